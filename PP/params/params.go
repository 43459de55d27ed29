package params

import (
	"errors"
	"fmt"

	"github.com/iyisakuma/pp-bench/common"
)

var ErrUnknownClass = errors.New("unknown problem class")

// Repetition keys besides the classifier variant names.
const (
	RepStrings     = "strings"      // parallel pass over the strings layout
	RepFlat        = "flat"         // parallel pass over the flat layout, hardware threads
	RepFlatThreads = "flat-threads" // parallel pass over the flat layout, explicit threads
)

// DefaultRepetitions applies to a key a class does not list.
const DefaultRepetitions = 10

// Class is one problem size: corpus shape, seed, repetitions per strategy
// and the thread counts compared (0 = hardware).
type Class struct {
	Name         string
	NumStrings   int
	StringLength int
	Seed         float64
	Repetitions  map[string]int
	Threads      []int
}

// Reps returns the repetition count for key.
func (c Class) Reps(key string) int {
	if n, ok := c.Repetitions[key]; ok && n > 0 {
		return n
	}
	return DefaultRepetitions
}

var classes = []Class{ClassS, ClassW, ClassA, ClassB}

func Lookup(name string) (Class, error) {
	for _, c := range classes {
		if c.Name == name {
			return c, nil
		}
	}
	return Class{}, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// Names lists the classes from smallest to largest.
func Names() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}

func defaultSeed() float64 {
	return common.DefaultSeed
}
