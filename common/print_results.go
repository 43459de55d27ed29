package common

import (
	"fmt"
	"io"
)

// Summary is the closing report block of a benchmark run.
type Summary struct {
	Name       string
	Class      string
	NumStrings int
	Length     int
	Strategies int
	Time       float64 // seconds spent in timed passes, all strategies
	Mops       float64 // million characters classified per second
	Optype     string
	Verified   bool
	Version    string
	GoVersion  string
	Date       string
	CPU        string
	RunID      string
}

func PrintResults(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\n\n %s Benchmark Completed\n", s.Name)
	fmt.Fprintf(w, " class_npb       =             %12s\n", s.Class)
	fmt.Fprintf(w, " Size            =        %8dx%8d\n", s.NumStrings, s.Length)
	fmt.Fprintf(w, " Strategies      =             %12d\n", s.Strategies)
	fmt.Fprintf(w, " Time in seconds =             %12.2f\n", s.Time)
	fmt.Fprintf(w, " Mop/s total     =             %12.2f\n", s.Mops)
	fmt.Fprintf(w, " Operation type  = %24s\n", s.Optype)

	if s.Verified {
		fmt.Fprintln(w, " Verification    =               SUCCESSFUL")
	} else {
		fmt.Fprintln(w, " Verification    =             UNSUCCESSFUL")
	}

	fmt.Fprintf(w, " Version         =             %12s\n", s.Version)
	fmt.Fprintf(w, " Compiler ver    =             %12s\n", s.GoVersion)
	fmt.Fprintf(w, " Compile date    =             %12s\n", s.Date)
	fmt.Fprintf(w, " CPU             = %s\n", s.CPU)
	fmt.Fprintf(w, " Run id          = %s\n", s.RunID)
	fmt.Fprintln(w, "\n----------------------------------------------------------------------")
	fmt.Fprintln(w)
}

// Mops returns millions of operations per second, or 0 for a zero time.
func Mops(ops float64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return ops / seconds / 1000000.0
}
