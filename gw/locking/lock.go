// Package locking provides shared-state synchronization helpers: a
// reader/writer lock with acquire-with-timeout semantics, and a pause/resume
// toggle for cooperating goroutines.
package locking

import (
	"context"
	"sync"
	"time"

	internal "github.com/haywardlabs/groundwork/gw"
	"github.com/haywardlabs/groundwork/gw/diagnostics"
)

// lockState is the shared core behind every handle clone.
type lockState[T any] struct {
	mu    sync.RWMutex
	value T

	timeout time.Duration
	poll    time.Duration
}

// LockWithTimeout wraps a value behind a reader/writer lock whose
// acquisition is bounded by a timeout. The zero value is unusable; construct
// with NewLockWithTimeout. Copying the struct clones the handle, not the
// protected value.
//
// Acquisition polls a non-blocking try-lock at a fixed interval, yielding
// between attempts, until the lock is obtained or the timeout elapses.
// Multiple readers may hold the lock simultaneously; a writer is exclusive.
// There is no fairness guarantee: the first successful poll wins.
type LockWithTimeout[T any] struct {
	state *lockState[T]
}

// Options tune a LockWithTimeout at construction.
type Options struct {
	// Timeout is the default acquisition bound when the caller passes zero.
	Timeout time.Duration
	// PollInterval is the delay between acquisition attempts.
	PollInterval time.Duration
}

// NewLockWithTimeout wraps value with the default 1s timeout and 10ms poll
// interval.
func NewLockWithTimeout[T any](value T) LockWithTimeout[T] {
	return NewLockWithTimeoutOptions(value, Options{})
}

// NewLockWithTimeoutOptions wraps value with explicit tuning. Zero fields
// fall back to the defaults.
func NewLockWithTimeoutOptions[T any](value T, opts Options) LockWithTimeout[T] {
	if opts.Timeout <= 0 {
		opts.Timeout = internal.DefaultLockTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = internal.DefaultPollInterval
	}
	return LockWithTimeout[T]{state: &lockState[T]{
		value:   value,
		timeout: opts.Timeout,
		poll:    opts.PollInterval,
	}}
}

// Clone returns another handle to the same lock and value.
func (l LockWithTimeout[T]) Clone() LockWithTimeout[T] {
	return LockWithTimeout[T]{state: l.state}
}

// TryReadWithTimeout attempts to acquire the read lock, polling until it
// succeeds or the timeout elapses. A non-positive timeout selects the
// configured default. The returned guard must be released with Unlock.
func (l LockWithTimeout[T]) TryReadWithTimeout(ctx context.Context, timeout time.Duration) (*ReadGuard[T], error) {
	acquire := func() bool { return l.state.mu.TryRLock() }
	if err := l.poll(ctx, timeout, acquire, diagnostics.KindLockTimeoutRead,
		"timeout while trying to acquire read lock"); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{state: l.state}, nil
}

// TryWriteWithTimeout attempts to acquire the write lock, polling until it
// succeeds or the timeout elapses. A non-positive timeout selects the
// configured default. The returned guard must be released with Unlock.
func (l LockWithTimeout[T]) TryWriteWithTimeout(ctx context.Context, timeout time.Duration) (*WriteGuard[T], error) {
	acquire := func() bool { return l.state.mu.TryLock() }
	if err := l.poll(ctx, timeout, acquire, diagnostics.KindLockTimeoutWrite,
		"timeout while trying to acquire write lock"); err != nil {
		return nil, err
	}
	return &WriteGuard[T]{state: l.state}, nil
}

// TryRead acquires the read lock with the default timeout.
func (l LockWithTimeout[T]) TryRead(ctx context.Context) (*ReadGuard[T], error) {
	return l.TryReadWithTimeout(ctx, 0)
}

// TryWrite acquires the write lock with the default timeout.
func (l LockWithTimeout[T]) TryWrite(ctx context.Context) (*WriteGuard[T], error) {
	return l.TryWriteWithTimeout(ctx, 0)
}

func (l LockWithTimeout[T]) poll(ctx context.Context, timeout time.Duration, acquire func() bool, kind diagnostics.ErrorKind, msg string) error {
	if timeout <= 0 {
		timeout = l.state.timeout
	}
	if acquire() {
		return nil
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(l.state.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return diagnostics.FromError(kind, ctx.Err())
		case <-deadline.C:
			return diagnostics.NewError(kind, msg)
		case <-ticker.C:
			if acquire() {
				return nil
			}
		}
	}
}

// ReadGuard scopes shared read access to the protected value. Unlock
// releases it; releasing twice is safe.
type ReadGuard[T any] struct {
	state *lockState[T]
	once  sync.Once
}

// Value returns the protected value.
func (g *ReadGuard[T]) Value() T { return g.state.value }

// Unlock releases the read lock.
func (g *ReadGuard[T]) Unlock() {
	g.once.Do(g.state.mu.RUnlock)
}

// WriteGuard scopes exclusive access to the protected value. Unlock
// releases it; releasing twice is safe.
type WriteGuard[T any] struct {
	state *lockState[T]
	once  sync.Once
}

// Value returns a pointer to the protected value for in-place mutation.
func (g *WriteGuard[T]) Value() *T { return &g.state.value }

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(value T) { g.state.value = value }

// Unlock releases the write lock.
func (g *WriteGuard[T]) Unlock() {
	g.once.Do(g.state.mu.Unlock)
}
