// Package corpus holds the two in-memory layouts of a fixed-length string
// corpus, loads them from newline-delimited text and generates random
// corpora.
package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports a corpus resource that cannot be opened or read.
	ErrUnavailable = errors.New("corpus unavailable")
	// ErrMalformed reports a byte outside 'a'..'z' or a string whose length
	// differs from the corpus stride.
	ErrMalformed = errors.New("malformed corpus")
)

// Corpus is one set of strings held in both layouts.
type Corpus struct {
	Strings Strings
	Flat    *Flat
	Length  int
}

// New builds both layouts from strs, which must all have length `length`.
func New(strs []string, length int) (*Corpus, error) {
	for i, s := range strs {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}
	}
	flat, err := FlatFromStrings(strs, length)
	if err != nil {
		return nil, err
	}
	return &Corpus{Strings: Strings(strs), Flat: flat, Length: length}, nil
}

// Len is the number of strings.
func (c *Corpus) Len() int {
	return len(c.Strings)
}

// Bytes is the number of characters in the corpus.
func (c *Corpus) Bytes() int {
	return c.Len() * c.Length
}

// Validate checks that every byte of s is a lowercase ASCII letter.
func Validate[T ~string | ~[]byte](s T) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || c > 'z' {
			return fmt.Errorf("%w: byte %q at offset %d", ErrMalformed, c, i)
		}
	}
	return nil
}
