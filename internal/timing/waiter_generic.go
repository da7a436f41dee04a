//go:build !linux
// +build !linux

// File: internal/timing/waiter_generic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable waiter fallback. The deadline is converted to a relative
// duration at call time, so it carries the conversion overhead inside
// the wait; the engine's deadline arithmetic is unaffected because
// deadlines are still computed on the absolute sequence.

package timing

import "time"

// Waiter blocks the calling goroutine until an absolute monotonic deadline,
// or until another goroutine calls Wake. A Wake issued while no wait is in
// progress is latched and satisfies the next wait immediately.
type Waiter struct {
	wake chan struct{}
}

// NewWaiter allocates the wake channel.
func NewWaiter() (*Waiter, error) {
	return &Waiter{wake: make(chan struct{}, 1)}, nil
}

// WaitUntil suspends until the deadline expires or a wake-up arrives.
// It reports woken=true when the return was caused by Wake.
func (w *Waiter) WaitUntil(deadline Stamp) (woken bool, err error) {
	d := deadline.Sub(Now())
	if d < 0 {
		d = 0
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.wake:
		return true, nil
	case <-t.C:
		return false, nil
	}
}

// Wake interrupts a wait in progress, or latches for the next one.
func (w *Waiter) Wake() error {
	select {
	case w.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close is a no-op on this platform.
func (w *Waiter) Close() error { return nil }
