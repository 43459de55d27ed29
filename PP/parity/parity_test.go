package parity

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oddLetters counts letters with an odd number of occurrences.
func oddLetters(s string) int {
	counts := map[rune]int{}
	for _, c := range s {
		counts[c]++
	}
	odd := 0
	for _, n := range counts {
		if n%2 == 1 {
			odd++
		}
	}
	return odd
}

func randomWord(r *rand.Rand, n, letters int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + r.IntN(letters)))
	}
	return sb.String()
}

func TestClassifiers_KnownCases(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"z", true},
		{"aabbcc", true},
		{"aabbc", true},
		{"aabbcd", false},
		{"abc", false},
		{"racecar", true},
		{"zzzzzzz", true},
		{"abcdefghijklmnopqrstuvwxyz", false},
		{"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxy", true},
	}

	for _, v := range Variants() {
		for _, tt := range tests {
			t.Run(v.Name+"/"+tt.in, func(t *testing.T) {
				assert.Equal(t, tt.want, v.Str(tt.in))
				assert.Equal(t, tt.want, v.Raw([]byte(tt.in)))
			})
		}
	}
}

func TestParityMask(t *testing.T) {
	assert.Equal(t, Mask(0), ParityMask(""))
	assert.Equal(t, Mask(0), ParityMask("aabbcc"))
	assert.Equal(t, Mask(1<<2), ParityMask("aabbc"))
	assert.Equal(t, Mask(1<<2|1<<3), ParityMask("aabbcd"))
	assert.Equal(t, Mask(1<<25), ParityMask([]byte("z")))
	assert.Equal(t, AllLetters, ParityMask("abcdefghijklmnopqrstuvwxyz"))
}

func TestAtMostOneBit(t *testing.T) {
	assert.True(t, AtMostOneBit(0))
	for k := 0; k < Alphabet; k++ {
		assert.True(t, AtMostOneBit(1<<k), "bit %d", k)
	}
	assert.False(t, AtMostOneBit(3))
	assert.False(t, AtMostOneBit(AllLetters))
}

func TestClassifiers_MatchOddLetterCount(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 2000; i++ {
		// Few distinct letters so both outcomes show up often.
		s := randomWord(r, r.IntN(40), 1+r.IntN(4))
		want := oddLetters(s) <= 1
		for _, v := range Variants() {
			require.Equal(t, want, v.Str(s), "%s(%q)", v.Name, s)
			require.Equal(t, want, v.Raw([]byte(s)), "%s(%q)", v.Name, s)
		}
	}
}

func TestBitmask_PermutationInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 500; i++ {
		b := []byte(randomWord(r, 1+r.IntN(30), 26))
		want := Bitmask(b)
		wantMask := ParityMask(b)
		r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		require.Equal(t, want, Bitmask(b))
		require.Equal(t, wantMask, ParityMask(b))
	}
}

func TestBitmask_DoesNotMutateInput(t *testing.T) {
	b := []byte("aabbcd")
	Bitmask(b)
	Map(b)
	Array(b)
	assert.Equal(t, "aabbcd", string(b))
}

func TestLookup(t *testing.T) {
	v, err := Lookup("popcount")
	require.NoError(t, err)
	assert.Equal(t, NamePopcount, v.Name)

	_, err = Lookup("hash")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	assert.Equal(t, NameBitmask, Canonical().Name)
	assert.Equal(t, []string{"map", "set", "array", "bitmask", "popcount"}, Names())
}

func benchmarkVariant(b *testing.B, name string) {
	v, err := Lookup(name)
	if err != nil {
		b.Fatal(err)
	}
	s := []byte(randomWord(rand.New(rand.NewPCG(1, 2)), 1000, 26))

	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	hits := 0
	for i := 0; i < b.N; i++ {
		if v.Raw(s) {
			hits++
		}
	}
	b.ReportMetric(float64(hits), "hits")
}

func BenchmarkMap(b *testing.B)      { benchmarkVariant(b, NameMap) }
func BenchmarkSet(b *testing.B)      { benchmarkVariant(b, NameSet) }
func BenchmarkArray(b *testing.B)    { benchmarkVariant(b, NameArray) }
func BenchmarkBitmask(b *testing.B)  { benchmarkVariant(b, NameBitmask) }
func BenchmarkPopcount(b *testing.B) { benchmarkVariant(b, NamePopcount) }
