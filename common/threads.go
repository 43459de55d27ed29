package common

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid/v2"
)

// ThreadsEnv overrides the hardware thread count when set to a positive
// integer.
const ThreadsEnv = "GO_NUM_THREADS"

// HardwareThreads is the worker count used for "full hardware parallelism".
func HardwareThreads() int {
	if nw := os.Getenv(ThreadsEnv); nw != "" {
		if n, err := strconv.Atoi(nw); err == nil && n > 0 {
			return n
		}
	}
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// DescribeCPU is a one-line description of the host processor.
func DescribeCPU() string {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = runtime.GOARCH
	}
	return fmt.Sprintf("%s (%d physical, %d logical, L1d %s, L2 %s)",
		brand,
		cpuid.CPU.PhysicalCores,
		cpuid.CPU.LogicalCores,
		cacheSize(cpuid.CPU.Cache.L1D),
		cacheSize(cpuid.CPU.Cache.L2),
	)
}

func cacheSize(bytes int) string {
	if bytes <= 0 {
		return "?"
	}
	return humanize.IBytes(uint64(bytes))
}
