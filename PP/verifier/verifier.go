package verifier

// Outcome is what a verifier sees of one measured strategy.
type Outcome struct {
	Name        string
	Repetitions int
	PassHits    int // hit count of a single pass
	Checksum    int // hits summed over all timed passes
}

// Verifier validates the checksum of one strategy.
type Verifier interface {
	Do(o Outcome) (failed bool)
}
