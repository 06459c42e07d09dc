package core

import "time"

// Timer is a cooperative countdown polled once per tick.
// It never fires on its own; Update advances it and Ready is read afterwards.
type Timer struct {
	Duration  time.Duration
	Remaining time.Duration
	Ready     bool
}

// NewTimer returns a timer armed for d
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d, Remaining: d}
}

// Update advances the timer by delta, saturating at zero
func (t *Timer) Update(delta time.Duration) {
	if t.Ready {
		return
	}
	t.Remaining -= delta
	if t.Remaining <= 0 {
		t.Remaining = 0
		t.Ready = true
	}
}

// Reset rearms the timer for its full duration
func (t *Timer) Reset() {
	t.Remaining = t.Duration
	t.Ready = false
}

// Elapsed returns time consumed since the last reset
func (t *Timer) Elapsed() time.Duration {
	return t.Duration - t.Remaining
}

// Progress returns the elapsed fraction in [0, 1]
func (t *Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed()) / float64(t.Duration)
}
