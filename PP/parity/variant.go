package parity

import (
	"errors"
	"fmt"
)

var ErrUnknownVariant = errors.New("unknown classifier variant")

// Variant is one classifier instantiated for both corpus layouts.
type Variant struct {
	Name string
	Str  func(string) bool
	Raw  func([]byte) bool
}

// Variant names.
const (
	NameMap      = "map"
	NameSet      = "set"
	NameArray    = "array"
	NameBitmask  = "bitmask"
	NamePopcount = "popcount"
)

// Variants returns every classifier, slowest first.
func Variants() []Variant {
	return []Variant{
		{Name: NameMap, Str: Map[string], Raw: Map[[]byte]},
		{Name: NameSet, Str: Set[string], Raw: Set[[]byte]},
		{Name: NameArray, Str: Array[string], Raw: Array[[]byte]},
		{Name: NameBitmask, Str: Bitmask[string], Raw: Bitmask[[]byte]},
		{Name: NamePopcount, Str: Popcount[string], Raw: Popcount[[]byte]},
	}
}

// Canonical is the Bitmask variant.
func Canonical() Variant {
	v, _ := Lookup(NameBitmask)
	return v
}

func Lookup(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Names lists the variant names in canonical order.
func Names() []string {
	vs := Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}
