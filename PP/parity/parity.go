// Package parity decides whether the letters of a string can be rearranged
// into a palindrome, i.e. whether at most one lowercase letter occurs an odd
// number of times.
//
// Bitmask is the canonical classifier: one 32-bit word tracks the parity of
// each of the 26 letters. Map, Set, Array and Popcount compute the same
// predicate and are kept for comparative benchmarking.
//
// Every classifier requires bytes in 'a'..'z'. Input is validated when the
// corpus is loaded, never here, so classification has no failure mode.
package parity

import (
	"math/bits"
)

// Alphabet is the number of letters tracked by a Mask.
const Alphabet = 26

// Text is either string layout accepted by the classifiers.
type Text interface {
	~string | ~[]byte
}

// Mask holds one parity bit per letter: bit k is set iff letter 'a'+k has
// been seen an odd number of times.
type Mask uint32

// AllLetters is the mask of a string containing each letter exactly once.
const AllLetters Mask = 1<<Alphabet - 1

// ParityMask folds s into its parity mask.
func ParityMask[T Text](s T) Mask {
	var m Mask
	for i := 0; i < len(s); i++ {
		m ^= 1 << (s[i] - 'a')
	}
	return m
}

// AtMostOneBit reports whether m is zero or a power of two. Zero counts: a
// string with only even letter counts is a palindrome permutation.
func AtMostOneBit(m Mask) bool {
	return m&(m-1) == 0
}

// Bitmask is the canonical classifier.
func Bitmask[T Text](s T) bool {
	return AtMostOneBit(ParityMask(s))
}

// Popcount counts the set bits of the parity mask instead of using the
// single-bit identity.
func Popcount[T Text](s T) bool {
	return bits.OnesCount32(uint32(ParityMask(s))) <= 1
}

// Array toggles a per-call counter per letter.
func Array[T Text](s T) bool {
	var counts [Alphabet]int
	for i := 0; i < len(s); i++ {
		k := s[i] - 'a'
		if counts[k] != 0 {
			counts[k]--
		} else {
			counts[k]++
		}
	}
	odd := 0
	for _, c := range counts {
		odd += c
	}
	return odd <= 1
}

// Map keeps the letters seen an odd number of times as map keys.
func Map[T Text](s T) bool {
	seen := make(map[byte]bool, Alphabet)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if _, ok := seen[c]; !ok {
			seen[c] = true
		} else {
			delete(seen, c)
		}
	}
	return len(seen) <= 1
}

// Set is Map with an empty-struct set.
func Set[T Text](s T) bool {
	odd := make(map[byte]struct{}, Alphabet)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if _, ok := odd[c]; ok {
			delete(odd, c)
		} else {
			odd[c] = struct{}{}
		}
	}
	return len(odd) <= 1
}
