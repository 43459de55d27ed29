package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/iyisakuma/pp-bench/common"
)

var ErrBadSeed = errors.New("seed must be an odd integer in (1, 2^46)")

// batchStrings is how many strings are generated between two writes.
const batchStrings = 1 << 12

// Generator writes NumStrings random strings of Length letters, one per
// line. Letters are drawn uniformly from the Randlc stream, one number per
// letter, so string i always starts at stream position i*Length and the
// output does not depend on Workers.
type Generator struct {
	NumStrings int
	Length     int
	Seed       float64 // 0 selects common.DefaultSeed
	Workers    int     // < 1 selects common.HardwareThreads()
}

func (g *Generator) validate() (seed float64, workers int, err error) {
	if g.NumStrings < 0 || g.Length < 1 {
		return 0, 0, fmt.Errorf("generate %d strings of length %d: invalid shape", g.NumStrings, g.Length)
	}
	seed = g.Seed
	if seed == 0 {
		seed = common.DefaultSeed
	}
	if seed <= 1 || seed >= 1<<46 || seed != float64(int64(seed)) || int64(seed)%2 == 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadSeed, g.Seed)
	}
	workers = g.Workers
	if workers < 1 {
		workers = common.HardwareThreads()
	}
	return seed, workers, nil
}

// Generate streams the corpus to w and returns the bytes written.
func (g *Generator) Generate(ctx context.Context, w io.Writer) (int64, error) {
	written, _, err := g.GenerateTally(ctx, w)
	return written, err
}

// GenerateTally is Generate that also returns how many generated strings
// are permutations of a palindrome. The tally counts letters per string
// and never goes through a classifier, so it is a known answer for the
// corpus it produced.
func (g *Generator) GenerateTally(ctx context.Context, w io.Writer) (written int64, hits int, err error) {
	seed, workers, err := g.validate()
	if err != nil {
		return 0, 0, err
	}

	line := g.Length + 1
	buf := make([]byte, min(batchStrings, g.NumStrings)*line)

	for first := 0; first < g.NumStrings; first += batchStrings {
		n := min(batchStrings, g.NumStrings-first)
		block := buf[:n*line]

		eg, egCtx := errgroup.WithContext(ctx)
		chunk := (n + workers - 1) / workers
		partials := make([]int, (n+chunk-1)/chunk)
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			slot := lo / chunk
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				partials[slot] = g.fill(block[lo*line:hi*line], seed, int64(first+lo))
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return written, hits, err
		}
		for _, p := range partials {
			hits += p
		}

		m, err := w.Write(block)
		written += int64(m)
		if err != nil {
			return written, hits, err
		}
	}
	return written, hits, nil
}

// fill writes consecutive lines starting with string index `index` and
// returns how many of them have at most one letter with an odd count.
func (g *Generator) fill(dst []byte, seed float64, index int64) int {
	x := common.SkipAhead(seed, common.DefaultMultiplier, index*int64(g.Length))
	y := make([]float64, g.Length)
	hits := 0
	for off := 0; off < len(dst); off += g.Length + 1 {
		var counts [26]int
		common.Vranlc(g.Length, &x, common.DefaultMultiplier, y)
		for j, v := range y {
			c := byte(26 * v)
			dst[off+j] = 'a' + c
			counts[c]++
		}
		dst[off+g.Length] = '\n'

		odd := 0
		for _, n := range counts {
			odd += n & 1
		}
		if odd <= 1 {
			hits++
		}
	}
	return hits
}

// WriteFile generates the corpus into path, replacing any existing file.
func (g *Generator) WriteFile(ctx context.Context, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	n, err := g.Generate(ctx, bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
