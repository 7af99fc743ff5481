package core

// Timer is a one-shot deadline on game time. It is polled, never blocks.
type Timer struct {
	due       float64
	armed     bool
	fired     bool
	cancelled bool
}

// Schedule arms the timer to fire once at due.
func (t *Timer) Schedule(due float64) {
	t.due = due
	t.armed = true
	t.fired = false
	t.cancelled = false
}

// Cancel disarms a pending timer.
func (t *Timer) Cancel() {
	if t.armed && !t.fired {
		t.cancelled = true
		t.armed = false
	}
}

// Poll reports true exactly once: on the first call with now >= due.
func (t *Timer) Poll(now float64) bool {
	if !t.armed || t.fired || now < t.due {
		return false
	}
	t.fired = true
	t.armed = false
	return true
}

// Pending reports whether the timer is armed and has not fired.
func (t *Timer) Pending() bool { return t.armed }

// Fired reports whether the timer has gone off.
func (t *Timer) Fired() bool { return t.fired }

// Cancelled reports whether the timer was disarmed before firing.
func (t *Timer) Cancelled() bool { return t.cancelled }

// Due returns the scheduled fire time.
func (t *Timer) Due() float64 { return t.due }
