package motion

// Handle is the single current-timer slot of a sequencer. Ticks scheduled
// through the event loop cannot be recalled, so each one carries the
// generation it was armed with and is ignored once a newer generation exists.
type Handle struct {
	gen   uint64
	armed bool
}

// Arm invalidates any pending tick and returns the generation for the new one
func (h *Handle) Arm() uint64 {
	h.gen++
	h.armed = true
	return h.gen
}

// Cancel invalidates any pending tick
func (h *Handle) Cancel() {
	h.gen++
	h.armed = false
}

// Live reports whether a tick armed with gen is still the current timer
func (h *Handle) Live(gen uint64) bool {
	return h.armed && gen == h.gen
}

// Fire consumes the current timer if gen is live. The handle is disarmed
// until the next Arm.
func (h *Handle) Fire(gen uint64) bool {
	if !h.Live(gen) {
		return false
	}
	h.armed = false
	return true
}

// Pending reports whether a timer is armed
func (h *Handle) Pending() bool { return h.armed }
