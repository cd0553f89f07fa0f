package motion

import "time"

// Throttle coalesces high-frequency marks (scroll, resize) into at most one
// recomputation per interval.
type Throttle struct {
	Interval time.Duration
	dirty    bool
	last     time.Time
}

// NewThrottle creates a throttle that starts dirty so the first check runs
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{Interval: interval, dirty: true}
}

// Mark records that a recomputation is needed
func (t *Throttle) Mark() { t.dirty = true }

// Dirty reports whether a mark is pending
func (t *Throttle) Dirty() bool { return t.dirty }

// Due reports whether the pending mark should be handled now and clears it
// when it does.
func (t *Throttle) Due(now time.Time) bool {
	if !t.dirty {
		return false
	}
	if !t.last.IsZero() && now.Sub(t.last) < t.Interval {
		return false
	}
	t.dirty = false
	t.last = now
	return true
}
