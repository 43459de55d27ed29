// Command pp benchmarks palindrome-permutation classifiers over a corpus of
// fixed-length lowercase strings.
//
// Usage:
//
//	pp gen --class B -o random_strings.txt
//	pp bench --class B --corpus random_strings.txt
//	pp bench --config pp.yaml --threads 0,6 --reducer channel
//	pp classify aabbc racecar abc
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const version = "4.1"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pp",
		Short:         "Palindrome-permutation batch classifier benchmark",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBenchCmd(), newGenCmd(), newClassifyCmd())
	return root
}

func main() {
	// Respect container CPU quotas before anything reads GOMAXPROCS.
	undo, _ := maxprocs.Set()
	defer undo()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pp:", err)
		undo()
		os.Exit(1)
	}
}
