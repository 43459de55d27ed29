package corpus

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyisakuma/pp-bench/PP/parity"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("abcxyz"))
	assert.NoError(t, Validate([]byte("")))

	for _, bad := range []string{"abC", "ab1", "a b", "é", "ab\n"} {
		err := Validate(bad)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", bad)
	}
}

func TestNew_BuildsBothLayouts(t *testing.T) {
	c, err := New([]string{"aab", "abc", "ccc"}, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 9, c.Bytes())
	assert.Equal(t, 3, c.Flat.Len())
	assert.Equal(t, "aababcccc", string(c.Flat.Bytes()))
	for i, s := range c.Strings {
		assert.Equal(t, s, string(c.Flat.At(i)))
	}
}

func TestNew_RejectsMalformed(t *testing.T) {
	_, err := New([]string{"aab", "aB1"}, 3)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = New([]string{"aab", "ab"}, 3)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewFlat(t *testing.T) {
	f, err := NewFlat([]byte("abcdef"), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 2, f.Stride())
	assert.Equal(t, "cd", string(f.At(1)))

	_, err = NewFlat([]byte("abcde"), 2)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = NewFlat([]byte("ab"), 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFlat_AtIsCapacityCapped(t *testing.T) {
	f, err := NewFlat([]byte("aabbcc"), 2)
	require.NoError(t, err)

	s := f.At(0)
	assert.Equal(t, 2, cap(s))
	_ = append(s, 'z')
	assert.Equal(t, "aabbcc", string(f.Bytes()))
}

func TestFlat_AtOutOfRangePanics(t *testing.T) {
	f, err := NewFlat([]byte("aabb"), 2)
	require.NoError(t, err)
	assert.Panics(t, func() { f.At(2) })
}

func TestFlatFromStrings_LengthMismatch(t *testing.T) {
	_, err := FlatFromStrings([]string{"abc", "ab"}, 3)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "string 1")

	_, err = FlatFromStrings([]string{"abcd"}, 3)
	assert.ErrorIs(t, err, ErrMalformed)

	f, err := FlatFromStrings(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
}

func TestCountRange_LayoutsAgree(t *testing.T) {
	c, err := New([]string{"aabbcc", "abcabc", "aaaaab", "abcdef", "zzzzzz"}, 6)
	require.NoError(t, err)

	v := parity.Canonical()
	for lo := 0; lo <= c.Len(); lo++ {
		for hi := lo; hi <= c.Len(); hi++ {
			assert.Equal(t,
				c.Strings.CountRange(v.Str, lo, hi),
				c.Flat.CountRange(v.Raw, lo, hi),
				"range [%d,%d)", lo, hi)
		}
	}
	assert.Equal(t, 3, c.Strings.CountRange(v.Str, 0, c.Len()))
}

func TestCountRange_ChecksumScenario(t *testing.T) {
	// Mixed lengths only fit the strings layout.
	s := Strings{"aabbcc", "abc", "a"}
	assert.Equal(t, 2, s.CountRange(parity.Canonical().Str, 0, s.Len()))
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader("abcd\naabb\r\nzzzz\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Length)
	assert.Equal(t, Strings{"abcd", "aabb", "zzzz"}, c.Strings)
	assert.Equal(t, "abcdaabbzzzz", string(c.Flat.Bytes()))
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	c, err := Load(strings.NewReader("ab\ncd"), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Flat.Len())
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		line   string
	}{
		{"short line", "abcd\nabc\n", 0, "line 2"},
		{"long line", "abc\nabcd\n", 3, "line 2"},
		{"uppercase", "abc\naBc\n", 3, "line 2"},
		{"digit", "ab1\n", 3, "line 1"},
		{"blank first line", "\nabc\n", 0, "line 1"},
		{"negative length", "abc\n", -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), tt.length)
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	_, err := Load(iotest.ErrReader(errors.New("disk gone")), 3)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.txt")
	require.NoError(t, os.WriteFile(path, []byte("aabbcc\nabcabd\n"), 0o644))

	c, err := LoadFile(path, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestGenerator_ShapeAndAlphabet(t *testing.T) {
	g := &Generator{NumStrings: 100, Length: 50, Workers: 3}
	var buf bytes.Buffer
	n, err := g.Generate(context.Background(), &buf)
	require.NoError(t, err)
	assert.EqualValues(t, 100*51, n)

	c, err := Load(&buf, 50)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Len())
}

func TestGenerator_IndependentOfWorkerCount(t *testing.T) {
	gen := func(workers int) string {
		g := &Generator{NumStrings: batchStrings + 37, Length: 9, Workers: workers}
		var buf bytes.Buffer
		_, err := g.Generate(context.Background(), &buf)
		require.NoError(t, err)
		return buf.String()
	}
	want := gen(1)
	for _, w := range []int{2, 5, 16} {
		assert.Equal(t, want, gen(w), "workers=%d", w)
	}
}

func TestGenerator_SeedChangesOutput(t *testing.T) {
	gen := func(seed float64) string {
		var buf bytes.Buffer
		_, err := (&Generator{NumStrings: 4, Length: 16, Seed: seed, Workers: 1}).Generate(context.Background(), &buf)
		require.NoError(t, err)
		return buf.String()
	}
	assert.Equal(t, gen(0), gen(314159265))
	assert.NotEqual(t, gen(0), gen(271828183))
}

func TestGenerator_TallyMatchesClassifier(t *testing.T) {
	// short strings so a good share of them are palindrome permutations
	for _, workers := range []int{1, 3} {
		g := &Generator{NumStrings: batchStrings + 101, Length: 3, Workers: workers}
		var buf bytes.Buffer
		n, hits, err := g.GenerateTally(context.Background(), &buf)
		require.NoError(t, err)
		assert.EqualValues(t, buf.Len(), n)

		c, err := Load(&buf, 3)
		require.NoError(t, err)
		want := c.Strings.CountRange(parity.Canonical().Str, 0, c.Len())
		assert.Equal(t, want, hits, "workers=%d", workers)
		assert.Positive(t, hits)
	}
}

func TestGenerator_Invalid(t *testing.T) {
	var buf bytes.Buffer
	_, err := (&Generator{NumStrings: 1, Length: 0}).Generate(context.Background(), &buf)
	assert.Error(t, err)

	for _, seed := range []float64{2, 1, 1.5, -3, 1 << 47} {
		_, err = (&Generator{NumStrings: 1, Length: 1, Seed: seed}).Generate(context.Background(), &buf)
		assert.ErrorIs(t, err, ErrBadSeed, "seed %v", seed)
	}
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	_, err := (&Generator{NumStrings: 10, Length: 4, Workers: 2}).Generate(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestGenerator_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random_strings.txt")
	g := &Generator{NumStrings: 10, Length: 1000, Workers: 2}
	n, err := g.WriteFile(context.Background(), path)
	require.NoError(t, err)
	assert.EqualValues(t, 10*1001, n)

	c, err := LoadFile(path, 1000)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())
}
