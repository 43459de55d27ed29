package driver

import (
	"fmt"

	"github.com/iyisakuma/pp-bench/PP/corpus"
	"github.com/iyisakuma/pp-bench/PP/parallel"
	"github.com/iyisakuma/pp-bench/PP/parity"
)

// Layout selects which in-memory representation a pass iterates.
type Layout int

const (
	LayoutStrings Layout = iota
	LayoutFlat
)

func (l Layout) String() string {
	switch l {
	case LayoutStrings:
		return "strings"
	case LayoutFlat:
		return "flat"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Evaluate is one batch pass: classify every string of c with v, iterating
// the given layout at degree d, and return the hit count.
func Evaluate(c *corpus.Corpus, v parity.Variant, layout Layout, d parallel.Degree, r parallel.Reducer) (int, error) {
	var count parallel.RangeCounter
	switch layout {
	case LayoutStrings:
		strs, fn := c.Strings, v.Str
		count = func(lo, hi int) int { return strs.CountRange(fn, lo, hi) }
	case LayoutFlat:
		flat, fn := c.Flat, v.Raw
		count = func(lo, hi int) int { return flat.CountRange(fn, lo, hi) }
	default:
		return 0, fmt.Errorf("evaluate: unknown %v", layout)
	}
	return parallel.Count(d, r, c.Len(), count)
}
