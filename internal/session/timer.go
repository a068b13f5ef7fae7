// Package session owns a typing session: its units, timer, and pause detection.
package session

import "time"

// Phase is the state of the session timer.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Timer tracks active time and excludes paused intervals from it.
type Timer struct {
	idle time.Duration

	phase       Phase
	startedAt   time.Time
	endedAt     time.Time
	lastInput   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewTimer returns an idle timer that pauses after idle without input.
func NewTimer(idle time.Duration) *Timer {
	return &Timer{idle: idle}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Start moves the timer to Running from any phase.
func (t *Timer) Start(now time.Time) {
	t.phase = Running
	t.startedAt = now
	t.endedAt = time.Time{}
	t.lastInput = now
	t.pausedAt = time.Time{}
	t.pausedTotal = 0
}

// Reset returns the timer to Idle.
func (t *Timer) Reset() {
	*t = Timer{idle: t.idle}
}

// Activity records an input event and resumes a paused timer. It reports
// whether a resume happened.
func (t *Timer) Activity(now time.Time) bool {
	switch t.phase {
	case Running:
		t.lastInput = now
		return false
	case Paused:
		t.resume(now)
		return true
	default:
		return false
	}
}

// Check pauses a running timer when no input arrived for longer than the
// idle threshold.
func (t *Timer) Check(now time.Time) bool {
	if t.phase != Running {
		return false
	}
	if now.Sub(t.lastInput) <= t.idle {
		return false
	}
	t.pause(now)
	return true
}

// Background pauses a running timer because the host went out of view.
func (t *Timer) Background(now time.Time) bool {
	if t.phase != Running {
		return false
	}
	t.pause(now)
	return true
}

// Continue resumes a paused timer on an explicit request.
func (t *Timer) Continue(now time.Time) bool {
	if t.phase != Paused {
		return false
	}
	t.resume(now)
	return true
}

// Complete stops the timer. A pending pause is folded into the paused total.
func (t *Timer) Complete(now time.Time) {
	switch t.phase {
	case Paused:
		t.pausedTotal += now.Sub(t.pausedAt)
	case Running:
	default:
		return
	}
	t.phase = Completed
	t.endedAt = now
}

// Elapsed returns wall time since start minus paused time.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if t.phase == Idle {
		return 0
	}
	end := now
	if t.phase == Completed {
		end = t.endedAt
	}
	elapsed := end.Sub(t.startedAt) - t.pausedTotal
	if t.phase == Paused {
		elapsed -= now.Sub(t.pausedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// StartedAt returns the start time of the current run.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// LastInput returns the time of the last input event.
func (t *Timer) LastInput() time.Time {
	return t.lastInput
}

// PausedTotal returns the accumulated time spent in completed pauses.
func (t *Timer) PausedTotal() time.Duration {
	return t.pausedTotal
}

func (t *Timer) pause(now time.Time) {
	t.phase = Paused
	t.pausedAt = now
}

func (t *Timer) resume(now time.Time) {
	t.pausedTotal += now.Sub(t.pausedAt)
	t.pausedAt = time.Time{}
	t.phase = Running
	t.lastInput = now
}
