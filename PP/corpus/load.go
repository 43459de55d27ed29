package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxLineLength bounds a single corpus line.
const MaxLineLength = 16 << 20

// Load reads one string per line from r. Every line must consist of 'a'..'z'
// and have exactly length bytes; length 0 takes the length of the first
// line. A trailing "\r" is dropped. Empty input is an empty corpus.
func Load(r io.Reader, length int) (*Corpus, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative string length %d", ErrMalformed, length)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	var strs []string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})
		if length == 0 {
			length = len(line)
			if length == 0 {
				return nil, fmt.Errorf("line %d: %w: empty string", lineNo, ErrMalformed)
			}
		}
		if len(line) != length {
			return nil, fmt.Errorf("line %d: %w: length %d, want %d",
				lineNo, ErrMalformed, len(line), length)
		}
		if err := Validate(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		strs = append(strs, string(line))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo+1, ErrMalformed, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	flat, err := FlatFromStrings(strs, length)
	if err != nil {
		return nil, err
	}
	return &Corpus{Strings: strs, Flat: flat, Length: length}, nil
}

// LoadFile opens path and Loads it.
func LoadFile(path string, length int) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	c, err := Load(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
