// Package parallel partitions a batch of n items into contiguous chunks,
// counts each chunk on its own goroutine and sums the partial counts.
//
// Addition is commutative and associative, so the total does not depend on
// the partition or on the order in which workers finish. Workers only read
// the batch; the only shared write is the final reduction.
package parallel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iyisakuma/pp-bench/common"
)

var ErrInvalidDegree = errors.New("invalid degree of parallelism")

// Degree selects how a batch pass is scheduled.
type Degree int

const (
	// Sequential runs the pass on the calling goroutine.
	Sequential Degree = -1
	// Hardware uses every available hardware thread.
	Hardware Degree = 0
)

func (d Degree) Validate() error {
	if d < Sequential {
		return fmt.Errorf("%w: %d", ErrInvalidDegree, int(d))
	}
	return nil
}

// Workers resolves d to a goroutine count.
func (d Degree) Workers() int {
	switch {
	case d == Hardware:
		return common.HardwareThreads()
	case d > 0:
		return int(d)
	default:
		return 1
	}
}

func (d Degree) String() string {
	switch {
	case d == Sequential:
		return "sequential"
	case d == Hardware:
		return "hardware"
	default:
		return strconv.Itoa(int(d)) + " threads"
	}
}

// Threads converts configured thread counts, where 0 means Hardware, into
// degrees. Negative counts are rejected.
func Threads(counts []int) ([]Degree, error) {
	out := make([]Degree, 0, len(counts))
	for _, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%w: thread count %d", ErrInvalidDegree, n)
		}
		out = append(out, Degree(n))
	}
	return out, nil
}
