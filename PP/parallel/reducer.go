package parallel

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var ErrUnknownReducer = errors.New("unknown reducer")

// RangeCounter counts the positives among items [lo, hi).
type RangeCounter func(lo, hi int) int

// Reducer runs count over the chunks of [0, n) on up to `workers`
// goroutines and returns the sum of the partial counts.
type Reducer interface {
	Name() string
	Sum(n, workers int, count RangeCounter) int
}

// Reducer names.
const (
	NameWaitGroup = "waitgroup"
	NameChannel   = "channel"
	NameAtomic    = "atomic"
	NameErrGroup  = "errgroup"
)

// paddedCount keeps each worker's partial on its own cache line.
type paddedCount struct {
	n int
	_ [56]byte
}

// WaitGroup writes one partial per worker slot and sums them after the
// barrier.
type WaitGroup struct{}

func (WaitGroup) Name() string { return NameWaitGroup }

func (WaitGroup) Sum(n, workers int, count RangeCounter) int {
	chunks := Chunks(n, workers)
	partials := make([]paddedCount, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, c := range chunks {
		go func(slot int, c Chunk) {
			defer wg.Done()
			partials[slot].n = count(c.Lo, c.Hi)
		}(i, c)
	}
	wg.Wait()

	total := 0
	for i := range partials {
		total += partials[i].n
	}
	return total
}

// Channel sends each partial on a buffered channel and collects them.
type Channel struct{}

func (Channel) Name() string { return NameChannel }

func (Channel) Sum(n, workers int, count RangeCounter) int {
	chunks := Chunks(n, workers)
	resultChan := make(chan int, len(chunks))

	for _, c := range chunks {
		go func(c Chunk) {
			resultChan <- count(c.Lo, c.Hi)
		}(c)
	}

	total := 0
	for range chunks {
		total += <-resultChan
	}
	return total
}

// Atomic adds each partial to a shared counter once per worker.
type Atomic struct{}

func (Atomic) Name() string { return NameAtomic }

func (Atomic) Sum(n, workers int, count RangeCounter) int {
	var total atomic.Int64
	var wg sync.WaitGroup
	for _, c := range Chunks(n, workers) {
		wg.Add(1)
		go func(c Chunk) {
			defer wg.Done()
			total.Add(int64(count(c.Lo, c.Hi)))
		}(c)
	}
	wg.Wait()
	return int(total.Load())
}

// ErrGroup schedules one task per chunk on an errgroup limited to
// `workers` goroutines. Chunks are sized for four tasks per worker so a
// slow worker does not hold the whole barrier.
type ErrGroup struct{}

func (ErrGroup) Name() string { return NameErrGroup }

func (ErrGroup) Sum(n, workers int, count RangeCounter) int {
	if workers < 1 {
		workers = 1
	}
	chunks := Chunks(n, workers*4)
	partials := make([]paddedCount, len(chunks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, c := range chunks {
		g.Go(func() error {
			partials[i].n = count(c.Lo, c.Hi)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	total := 0
	for i := range partials {
		total += partials[i].n
	}
	return total
}

var reducers = map[string]Reducer{
	NameWaitGroup: WaitGroup{},
	NameChannel:   Channel{},
	NameAtomic:    Atomic{},
	NameErrGroup:  ErrGroup{},
}

// ReducerByName returns the named reducer. The empty name is WaitGroup.
func ReducerByName(name string) (Reducer, error) {
	if name == "" {
		return WaitGroup{}, nil
	}
	r, ok := reducers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
	}
	return r, nil
}

// ReducerNames lists the reducer names in sorted order.
func ReducerNames() []string {
	names := make([]string, 0, len(reducers))
	for name := range reducers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
