package corpus

import (
	"fmt"
)

// Flat is the flat-buffer layout: N strings of length stride laid out back
// to back. String i is data[i*stride : (i+1)*stride]. The buffer is never
// written after construction and may be shared by any number of readers.
type Flat struct {
	data   []byte
	stride int
	n      int
}

// NewFlat wraps data without copying. len(data) must be a multiple of
// stride.
func NewFlat(data []byte, stride int) (*Flat, error) {
	if stride < 1 {
		return nil, fmt.Errorf("%w: stride %d", ErrMalformed, stride)
	}
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("%w: buffer of %d bytes is not a multiple of stride %d",
			ErrMalformed, len(data), stride)
	}
	return &Flat{data: data, stride: stride, n: len(data) / stride}, nil
}

// FlatFromStrings copies strs into one contiguous buffer. Every string must
// have exactly stride bytes. An empty strs accepts any stride.
func FlatFromStrings(strs []string, stride int) (*Flat, error) {
	if len(strs) == 0 {
		return &Flat{stride: max(stride, 1)}, nil
	}
	if stride < 1 {
		return nil, fmt.Errorf("%w: stride %d", ErrMalformed, stride)
	}
	data := make([]byte, len(strs)*stride)
	for i, s := range strs {
		if len(s) != stride {
			return nil, fmt.Errorf("%w: string %d has length %d, want %d",
				ErrMalformed, i, len(s), stride)
		}
		copy(data[i*stride:], s)
	}
	return NewFlat(data, stride)
}

func (f *Flat) Len() int {
	return f.n
}

func (f *Flat) Stride() int {
	return f.stride
}

// Bytes returns the shared backing buffer. Callers must not modify it.
func (f *Flat) Bytes() []byte {
	return f.data
}

// At returns string i. The result aliases the buffer and has its capacity
// capped so an append cannot reach string i+1.
func (f *Flat) At(i int) []byte {
	lo := i * f.stride
	hi := lo + f.stride
	return f.data[lo:hi:hi]
}

// CountRange classifies strings [lo, hi) directly in the shared buffer.
func (f *Flat) CountRange(fn func([]byte) bool, lo, hi int) int {
	hits := 0
	for i := lo; i < hi; i++ {
		if fn(f.At(i)) {
			hits++
		}
	}
	return hits
}
