package common

import (
	"time"
)

// MaxTimers is the number of timer slots held by a Timers value.
const MaxTimers = 64

// Timers accumulates elapsed time in numbered slots and reads it back in
// seconds. Start times keep the monotonic clock reading, so wall-clock
// steps during a run do not skew the result. The zero value is ready to
// use. A Timers value is owned by a single goroutine.
type Timers struct {
	start   [MaxTimers]time.Time
	elapsed [MaxTimers]time.Duration
}

func (t *Timers) Clear(n int) {
	t.elapsed[n] = 0
}

func (t *Timers) Start(n int) {
	t.start[n] = time.Now()
}

func (t *Timers) Stop(n int) {
	t.elapsed[n] += time.Since(t.start[n])
}

func (t *Timers) Read(n int) float64 {
	return t.elapsed[n].Seconds()
}
