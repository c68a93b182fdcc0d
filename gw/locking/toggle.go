package locking

import (
	"context"
	"sync"
	"time"

	"github.com/haywardlabs/groundwork/gw/diagnostics"
)

// ToggleControl gates cooperating goroutines behind a pause/resume switch.
// While paused, waiters block until Resume broadcasts; resuming wakes every
// waiter at once.
type ToggleControl struct {
	mu      sync.Mutex
	paused  bool
	resumed chan struct{}
}

// NewToggleControl creates a control in the resumed state.
func NewToggleControl() *ToggleControl {
	return &ToggleControl{resumed: make(chan struct{})}
}

// Pause switches the control to the paused state. Subsequent WaitIfPaused
// calls block until Resume.
func (t *ToggleControl) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.paused {
		t.paused = true
		t.resumed = make(chan struct{})
	}
}

// Resume switches the control to the resumed state and wakes all waiters.
func (t *ToggleControl) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		t.paused = false
		close(t.resumed)
	}
}

// IsPaused reports the current state.
func (t *ToggleControl) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// WaitIfPaused blocks while the control is paused, re-checking after each
// resume broadcast in case the control was paused again in quick
// succession. Returns the context error if ctx ends first.
func (t *ToggleControl) WaitIfPaused(ctx context.Context) error {
	for {
		t.mu.Lock()
		if !t.paused {
			t.mu.Unlock()
			return nil
		}
		ch := t.resumed
		t.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return diagnostics.FromError(diagnostics.KindToggleControl, ctx.Err())
		}
	}
}

// WaitWithTimeout waits for at most d while the control is paused. It
// returns nil if the control was already resumed or resumes in time, and a
// TimedOut error otherwise.
func (t *ToggleControl) WaitWithTimeout(d time.Duration) error {
	t.mu.Lock()
	if !t.paused {
		t.mu.Unlock()
		return nil
	}
	ch := t.resumed
	t.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ch:
		return nil
	case <-timer.C:
		return diagnostics.NewError(diagnostics.KindTimedOut, "timeout elapsed before control was resumed")
	}
}
