package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iyisakuma/pp-bench/PP/config"
	"github.com/iyisakuma/pp-bench/PP/corpus"
	"github.com/iyisakuma/pp-bench/PP/driver"
	"github.com/iyisakuma/pp-bench/PP/parallel"
	"github.com/iyisakuma/pp-bench/PP/params"
	"github.com/iyisakuma/pp-bench/PP/verifier"
	"github.com/iyisakuma/pp-bench/common"
)

var errVerification = errors.New("checksum verification failed")

type benchFlags struct {
	configPath  string
	class       string
	corpusPath  string
	length      int
	threads     []int
	reducer     string
	variants    []string
	repetitions map[string]int
	noVerify    bool
	expect      int
	metricsAddr string
	logLevel    string
	logJSON     bool
}

func newBenchCmd() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure every classifier, layout and thread count over a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runBench(cmd, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.StringVar(&f.class, "class", "", "problem class (S, W, A, B)")
	fl.StringVar(&f.corpusPath, "corpus", "", "corpus file; empty generates the class corpus in memory")
	fl.IntVar(&f.length, "length", 0, "fixed string length (0 = infer from the first line)")
	fl.IntSliceVar(&f.threads, "threads", nil, "thread counts to compare (0 = hardware)")
	fl.StringVar(&f.reducer, "reducer", "", "partial-count reduction: "+strings.Join(parallel.ReducerNames(), ", "))
	fl.StringSliceVar(&f.variants, "variants", nil, "sequential classifier variants to compare")
	fl.StringToIntVar(&f.repetitions, "reps", nil, "repetition overrides, e.g. map=1,flat=10")
	fl.BoolVar(&f.noVerify, "no-verify", false, "skip checksum verification")
	fl.IntVar(&f.expect, "expect", 0, "known single-pass hit count of the corpus")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve prometheus metrics on host:port while running")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.BoolVar(&f.logJSON, "log-json", false, "log as JSON")
	return cmd
}

// resolve layers explicitly set flags over the config file over defaults,
// then validates the result.
func (f *benchFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("class") {
		cfg.Class = f.class
	}
	if changed("corpus") {
		cfg.CorpusPath = f.corpusPath
	}
	if changed("length") {
		cfg.StringLength = f.length
	}
	if changed("threads") {
		cfg.Threads = f.threads
	}
	if changed("reducer") {
		cfg.Reducer = f.reducer
	}
	if changed("variants") {
		cfg.Variants = f.variants
	}
	if changed("reps") {
		cfg.Repetitions = f.repetitions
	}
	if changed("no-verify") {
		cfg.Verify = !f.noVerify
	}
	if changed("expect") {
		expect := f.expect
		cfg.ExpectedHits = &expect
	}
	if changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-json") {
		cfg.Log.JSON = f.logJSON
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()
	runID := common.NewRunID()

	level, err := common.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := common.NewLogger(common.LogConfig{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Output:  cmd.ErrOrStderr(),
		Service: "pp-bench",
		RunID:   runID,
	})

	class, err := cfg.ClassParams()
	if err != nil {
		return err
	}
	degrees, err := cfg.Degrees()
	if err != nil {
		return err
	}
	variants, err := cfg.SelectedVariants()
	if err != nil {
		return err
	}
	reducer, err := cfg.SelectedReducer()
	if err != nil {
		return err
	}

	metrics := common.NewMetrics()
	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, metrics, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	fmt.Fprintf(out, "\n\n NAS Parallel Benchmarks %s Go version - PP Benchmark\n\n", version)
	fmt.Fprintln(out, "Reading...")
	c, tally, err := loadCorpus(cmd.Context(), cfg, class, logger)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded",
		"strings", c.Len(),
		"length", c.Length,
		"size", humanize.IBytes(uint64(c.Bytes())),
		"threads", degrees,
		"reducer", reducer.Name())
	fmt.Fprintln(out, "Done. Benchmarking..")

	plan, err := driver.Plan(c, driver.PlanOptions{
		Class:    class,
		Variants: variants,
		Degrees:  degrees,
		Reducer:  reducer,
	})
	if err != nil {
		return err
	}

	checksums := &verifier.ChecksumVerifier{}
	var v verifier.Verifier = checksums
	switch {
	case !cfg.Verify:
		v = &verifier.EmptyVerifier{}
	case cfg.ExpectedHits != nil:
		v = &verifier.ExpectedVerifier{Hits: *cfg.ExpectedHits}
	case tally != nil:
		v = &verifier.ExpectedVerifier{Hits: *tally}
	}
	if ev, ok := v.(*verifier.ExpectedVerifier); ok {
		logger.Info("verifying against known hit count", "hits", ev.Hits)
	}
	d := driver.New(out,
		driver.WithLogger(logger),
		driver.WithMetrics(metrics),
		driver.WithVerifier(v),
		driver.WithLabel(labelFor(out)),
	)
	results, err := d.RunAll(plan)
	if err != nil {
		return err
	}

	if hits, first, ok := checksums.Reference(); ok && v == checksums {
		logger.Info("reference hit count", "hits", hits, "strategy", first)
	}
	if best, ok := driver.Fastest(results, driver.LayoutFlat); ok {
		fmt.Fprintf(out, "Fastest flat layout: %s, %g seconds on average\n", best.Degree, best.AvgSeconds)
	}

	seconds := driver.TotalSeconds(results)
	chars := float64(driver.TotalPasses(results)) * float64(c.Bytes())
	verified := cfg.Verify && driver.AllVerified(results)
	common.PrintResults(out, common.Summary{
		Name:       "PP",
		Class:      class.Name,
		NumStrings: c.Len(),
		Length:     c.Length,
		Strategies: len(results),
		Time:       seconds,
		Mops:       common.Mops(chars, seconds),
		Optype:     "chars classified",
		Verified:   verified,
		Version:    version,
		GoVersion:  runtime.Version(),
		Date:       time.Now().Format("02 Jan 2006"),
		CPU:        common.DescribeCPU(),
		RunID:      runID,
	})

	if cfg.Verify && !verified {
		return errVerification
	}
	return nil
}

// loadCorpus reads cfg.CorpusPath, or generates the class corpus in memory
// when no path is configured. A generated corpus comes with its hit tally.
func loadCorpus(ctx context.Context, cfg config.Config, class params.Class, logger *slog.Logger) (*corpus.Corpus, *int, error) {
	if cfg.CorpusPath != "" {
		c, err := corpus.LoadFile(cfg.CorpusPath, cfg.StringLength)
		return c, nil, err
	}

	logger.Info("no corpus path, generating class corpus in memory", "class", class.Name)
	var buf bytes.Buffer
	g := &corpus.Generator{
		NumStrings: class.NumStrings,
		Length:     class.StringLength,
		Seed:       class.Seed,
	}
	buf.Grow(class.NumStrings * (class.StringLength + 1))
	_, hits, err := g.GenerateTally(ctx, &buf)
	if err != nil {
		return nil, nil, err
	}
	c, err := corpus.Load(&buf, class.StringLength)
	if err != nil {
		return nil, nil, err
	}
	return c, &hits, nil
}

// serveMetrics exposes /metrics until the returned stop function is called.
func serveMetrics(addr string, m *common.Metrics, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
