package verifier

// ChecksumVerifier fails a strategy whose checksum is not Repetitions times
// its single-pass hit count, or whose single-pass hit count differs from the
// first strategy it verified. Every strategy runs over the same corpus, so
// any difference means a layout or a reduction is wrong.
type ChecksumVerifier struct {
	reference int
	seen      bool
	first     string
}

func (m *ChecksumVerifier) Do(o Outcome) (failed bool) {
	if o.Checksum != o.Repetitions*o.PassHits {
		return true
	}
	if !m.seen {
		m.reference = o.PassHits
		m.first = o.Name
		m.seen = true
		return false
	}
	return o.PassHits != m.reference
}

// Reference returns the hit count every strategy is compared against and
// the strategy that set it.
func (m *ChecksumVerifier) Reference() (hits int, strategy string, ok bool) {
	return m.reference, m.first, m.seen
}
