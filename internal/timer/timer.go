// Package timer measures wall-clock intervals on the monotonic clock.
package timer

import "time"

// Timer measures the interval between Start and Stop. The zero value is
// ready to use and reports zero until started.
type Timer struct {
	start   time.Time
	stop    time.Time
	running bool
}

// Start begins a new interval, discarding any previous one.
func (t *Timer) Start() {
	t.start = time.Now()
	t.stop = time.Time{}
	t.running = true
}

// Stop ends the current interval. Stop without Start is a no-op.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.stop = time.Now()
	t.running = false
}

// Duration returns the measured interval. While running it is the time
// since Start.
func (t *Timer) Duration() time.Duration {
	switch {
	case t.start.IsZero():
		return 0
	case t.running:
		return time.Since(t.start)
	default:
		// Sub uses the monotonic readings, so this is never negative.
		return t.stop.Sub(t.start)
	}
}

// Elapsed returns Duration in seconds.
func (t *Timer) Elapsed() float64 {
	return t.Duration().Seconds()
}

// Time runs fn between Start and Stop of a fresh timer and returns the
// elapsed seconds.
func Time(fn func()) float64 {
	var t Timer
	t.Start()
	fn()
	t.Stop()
	return t.Elapsed()
}
