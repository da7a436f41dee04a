// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types shared across the corelock library. Every fallible
// lifecycle operation wraps one of these sentinels, so callers can classify
// failures with errors.Is without parsing messages.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrCreate reports a failed creation attempt: invalid attributes or
	// resource exhaustion. No partial instance is ever returned with it.
	ErrCreate = fmt.Errorf("instance creation failed")

	// ErrStart reports that the platform refused to spawn or schedule the
	// worker (for example insufficient privilege for a real-time class).
	// The instance remains dormant and may be retried or destroyed.
	ErrStart = fmt.Errorf("worker start failed")

	// ErrJoin reports a failed join: the instance was never started or the
	// underlying wait failed. Resource state is undefined afterwards.
	ErrJoin = fmt.Errorf("worker join failed")

	// ErrTerminate reports a failed forced termination.
	ErrTerminate = fmt.Errorf("worker terminate failed")

	// ErrBusy reports a destroy attempt before a successful join. Purely a
	// sequencing error; the caller must join first.
	ErrBusy = fmt.Errorf("instance busy: not joined")

	// ErrNotSupported reports an operation unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")
)
