package parallel

// Chunk is the half-open index range [Lo, Hi) owned by one worker.
type Chunk struct {
	Lo, Hi int
}

// Chunks splits [0, n) into at most `workers` contiguous ranges of
// ceil(n/workers) items. Empty ranges are dropped, so fewer chunks than
// workers come back when n < workers.
func Chunks(n, workers int) []Chunk {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	out := make([]Chunk, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, Chunk{Lo: lo, Hi: min(lo+size, n)})
	}
	return out
}
