package driver

import (
	"fmt"

	"github.com/iyisakuma/pp-bench/PP/corpus"
	"github.com/iyisakuma/pp-bench/PP/parallel"
	"github.com/iyisakuma/pp-bench/PP/params"
	"github.com/iyisakuma/pp-bench/PP/parity"
)

// PlanOptions selects the strategies Plan builds.
type PlanOptions struct {
	Class       params.Class
	Variants    []parity.Variant  // sequential comparison set; nil = all
	Degrees     []parallel.Degree // parallel degrees; nil = Class.Threads
	Reducer     parallel.Reducer  // nil = WaitGroup
	Repetitions map[string]int    // overrides Class repetitions by key
}

func (o PlanOptions) reps(key string) int {
	if n, ok := o.Repetitions[key]; ok {
		return n
	}
	return o.Class.Reps(key)
}

// Plan builds the comparison set over c:
//
//   - every variant, sequentially, over the strings layout;
//   - Bitmask at every degree over the strings layout;
//   - Bitmask at every degree over the flat layout.
//
// All strategies share c read-only.
func Plan(c *corpus.Corpus, opts PlanOptions) ([]Strategy, error) {
	variants := opts.Variants
	if variants == nil {
		variants = parity.Variants()
	}
	degrees := opts.Degrees
	if degrees == nil {
		var err error
		if degrees, err = parallel.Threads(opts.Class.Threads); err != nil {
			return nil, err
		}
	}
	for _, d := range degrees {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	reducer := opts.Reducer
	if reducer == nil {
		reducer = parallel.WaitGroup{}
	}

	var plan []Strategy
	add := func(v parity.Variant, layout Layout, d parallel.Degree, reps int) {
		plan = append(plan, Strategy{
			Name:        fmt.Sprintf("%s, %s, %s, %d rep", v.Name, layout, d, reps),
			Repetitions: reps,
			Workers:     d.Workers(),
			Layout:      layout,
			Degree:      d,
			Pass: func() (int, error) {
				return Evaluate(c, v, layout, d, reducer)
			},
		})
	}

	for _, v := range variants {
		add(v, LayoutStrings, parallel.Sequential, opts.reps(v.Name))
	}

	canonical := parity.Canonical()
	for _, d := range degrees {
		add(canonical, LayoutStrings, d, opts.reps(params.RepStrings))
	}
	for _, d := range degrees {
		key := params.RepFlatThreads
		if d == parallel.Hardware {
			key = params.RepFlat
		}
		add(canonical, LayoutFlat, d, opts.reps(key))
	}
	return plan, nil
}
