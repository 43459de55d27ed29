// Package driver measures batch-pass strategies: each strategy runs an
// untimed warm-up pass, then a fixed number of timed passes whose hit counts
// are summed into a checksum so none of the work can be optimised away.
package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iyisakuma/pp-bench/PP/parallel"
	"github.com/iyisakuma/pp-bench/PP/verifier"
	"github.com/iyisakuma/pp-bench/common"
)

var ErrRepetitions = errors.New("repetitions must be at least 1")

const (
	tBenchmarking = 0
	tWarmup       = 1
)

// Strategy is one named way of running a batch pass.
type Strategy struct {
	Name        string
	Repetitions int
	Workers     int
	Layout      Layout
	Degree      parallel.Degree
	Pass        func() (int, error)
}

type pass struct {
	elapsed time.Duration
	hits    int
}

// Result is the measurement of one strategy.
type Result struct {
	Name        string
	Layout      Layout
	Degree      parallel.Degree
	Repetitions int
	PassHits    int
	Checksum    int
	Elapsed     time.Duration
	AvgSeconds  float64
	Verified    bool
}

// Driver runs strategies and writes one report line per strategy.
type Driver struct {
	out      io.Writer
	logger   *slog.Logger
	metrics  *common.Metrics
	verifier verifier.Verifier
	label    func(string) string
	timers   common.Timers
}

type Option func(*Driver)

func WithLogger(l *slog.Logger) Option { return func(d *Driver) { d.logger = l } }

func WithMetrics(m *common.Metrics) Option { return func(d *Driver) { d.metrics = m } }

func WithVerifier(v verifier.Verifier) Option { return func(d *Driver) { d.verifier = v } }

// WithLabel decorates strategy names in report lines.
func WithLabel(fn func(string) string) Option { return func(d *Driver) { d.label = fn } }

// New returns a driver reporting to out. Without options it verifies
// checksums with a ChecksumVerifier and discards logs.
func New(out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		out:      out,
		logger:   common.DiscardLogger(),
		verifier: &verifier.ChecksumVerifier{},
		label:    func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run measures s. The report line is written only once every pass of s has
// completed.
func (d *Driver) Run(s Strategy) (Result, error) {
	if s.Repetitions < 1 {
		return Result{}, fmt.Errorf("%s: %w (got %d)", s.Name, ErrRepetitions, s.Repetitions)
	}
	if s.Pass == nil {
		return Result{}, fmt.Errorf("%s: no pass function", s.Name)
	}

	d.timers.Clear(tWarmup)
	d.timers.Start(tWarmup)
	passHits, err := s.Pass()
	d.timers.Stop(tWarmup)
	if err != nil {
		return Result{}, fmt.Errorf("%s: warm-up pass: %w", s.Name, err)
	}
	d.logger.Debug("warm-up pass done",
		"strategy", s.Name,
		"hits", passHits,
		"seconds", d.timers.Read(tWarmup))

	d.metrics.SetWorkers(s.Name, s.Workers)

	checksum := 0
	passes := make([]pass, s.Repetitions)
	d.timers.Clear(tBenchmarking)
	d.timers.Start(tBenchmarking)
	for i := range passes {
		start := time.Now()
		hits, err := s.Pass()
		if err != nil {
			return Result{}, fmt.Errorf("%s: pass %d: %w", s.Name, i+1, err)
		}
		passes[i] = pass{elapsed: time.Since(start), hits: hits}
		checksum += hits
	}
	d.timers.Stop(tBenchmarking)

	// published outside the timed region
	for _, p := range passes {
		d.metrics.ObservePass(s.Name, p.elapsed.Seconds(), p.hits)
	}

	total := d.timers.Read(tBenchmarking)
	res := Result{
		Name:        s.Name,
		Layout:      s.Layout,
		Degree:      s.Degree,
		Repetitions: s.Repetitions,
		PassHits:    passHits,
		Checksum:    checksum,
		Elapsed:     time.Duration(total * float64(time.Second)),
		AvgSeconds:  total / float64(s.Repetitions),
	}

	failed := d.verifier.Do(verifier.Outcome{
		Name:        s.Name,
		Repetitions: s.Repetitions,
		PassHits:    passHits,
		Checksum:    checksum,
	})
	res.Verified = !failed
	if failed {
		d.metrics.VerificationFailed()
		d.logger.Warn("checksum verification failed",
			"strategy", s.Name,
			"pass_hits", passHits,
			"checksum", checksum,
			"repetitions", s.Repetitions)
	}

	fmt.Fprintf(d.out, "%s executed in %g seconds on average. Result: %d\n",
		d.label(s.Name), res.AvgSeconds, res.Checksum)
	d.logger.Info("strategy measured",
		"strategy", s.Name,
		"avg_seconds", res.AvgSeconds,
		"checksum", res.Checksum,
		"verified", res.Verified)
	return res, nil
}

// RunAll measures every strategy in order and stops at the first error.
func (d *Driver) RunAll(ss []Strategy) ([]Result, error) {
	results := make([]Result, 0, len(ss))
	for _, s := range ss {
		res, err := d.Run(s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// AllVerified reports whether every result passed verification.
func AllVerified(results []Result) bool {
	for _, r := range results {
		if !r.Verified {
			return false
		}
	}
	return len(results) > 0
}

// TotalSeconds sums the timed seconds of every result.
func TotalSeconds(results []Result) float64 {
	total := 0.0
	for _, r := range results {
		total += r.Elapsed.Seconds()
	}
	return total
}

// TotalPasses sums the timed passes of every result.
func TotalPasses(results []Result) int {
	n := 0
	for _, r := range results {
		n += r.Repetitions
	}
	return n
}

// Fastest returns the parallel result over layout with the lowest average
// time per pass. Sequential results are skipped.
func Fastest(results []Result, layout Layout) (Result, bool) {
	var best Result
	found := false
	for _, r := range results {
		if r.Layout != layout || r.Degree == parallel.Sequential {
			continue
		}
		if !found || r.AvgSeconds < best.AvgSeconds {
			best, found = r, true
		}
	}
	return best, found
}
