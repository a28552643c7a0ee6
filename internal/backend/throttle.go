package backend

import "time"

// debounce coalesces bursts of touches into a single fire once the source has
// been quiet for interval. It is owned by one goroutine.
type debounce struct {
	interval time.Duration
	timer    *time.Timer
	pending  bool
}

func newDebounce(interval time.Duration) *debounce {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &debounce{interval: interval, timer: t}
}

// touch records activity. It reports true when the caller should fire
// immediately because debouncing is disabled.
func (d *debounce) touch() bool {
	if d.interval <= 0 {
		return true
	}
	d.pending = true
	d.timer.Reset(d.interval)
	return false
}

// fired must be called after receiving from C. It reports whether a touch was
// pending.
func (d *debounce) fired() bool {
	was := d.pending
	d.pending = false
	return was
}

func (d *debounce) C() <-chan time.Time {
	return d.timer.C
}

func (d *debounce) stop() {
	d.timer.Stop()
	d.pending = false
}
