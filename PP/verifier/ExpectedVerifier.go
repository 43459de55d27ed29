package verifier

// ExpectedVerifier checks each strategy against a known single-pass hit
// count, for corpora whose answer is known in advance.
type ExpectedVerifier struct {
	Hits int
}

func (m *ExpectedVerifier) Do(o Outcome) (failed bool) {
	return o.PassHits != m.Hits || o.Checksum != o.Repetitions*m.Hits
}
