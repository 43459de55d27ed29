package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyisakuma/pp-bench/PP/parity"
)

func TestLookup(t *testing.T) {
	c, err := Lookup("B")
	require.NoError(t, err)
	assert.Equal(t, 1000000, c.NumStrings)
	assert.Equal(t, 1000, c.StringLength)
	assert.Equal(t, 1500, c.Reps(RepFlatThreads))

	_, err = Lookup("Z")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"S", "W", "A", "B"}, Names())
}

func TestClasses_AreComplete(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)

		assert.Positive(t, c.NumStrings, name)
		assert.Positive(t, c.StringLength, name)
		assert.NotEmpty(t, c.Threads, name)
		for _, n := range c.Threads {
			assert.GreaterOrEqual(t, n, 0, name)
		}
		for _, v := range parity.Names() {
			assert.Contains(t, c.Repetitions, v, "%s missing %s", name, v)
		}
		for _, k := range []string{RepStrings, RepFlat, RepFlatThreads} {
			assert.Contains(t, c.Repetitions, k, "%s missing %s", name, k)
		}
	}
}

func TestReps_Default(t *testing.T) {
	c := Class{Repetitions: map[string]int{"map": 0}}
	assert.Equal(t, DefaultRepetitions, c.Reps("map"))
	assert.Equal(t, DefaultRepetitions, c.Reps("other"))
}
