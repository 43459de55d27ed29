package corpus

// Strings is the independent-strings layout: every string is its own
// allocation and iteration follows N headers.
type Strings []string

func (s Strings) Len() int {
	return len(s)
}

// CountRange classifies s[lo:hi] and returns the number of positives.
func (s Strings) CountRange(fn func(string) bool, lo, hi int) int {
	hits := 0
	for _, str := range s[lo:hi] {
		if fn(str) {
			hits++
		}
	}
	return hits
}
