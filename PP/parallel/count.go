package parallel

// Count is one batch pass over n items at degree d. Sequential degrees call
// count(0, n) on the caller's goroutine; every other degree goes through r.
func Count(d Degree, r Reducer, n int, count RangeCounter) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d == Sequential || n == 0 {
		return count(0, n), nil
	}
	if r == nil {
		r = WaitGroup{}
	}
	return r.Sum(n, d.Workers(), count), nil
}
