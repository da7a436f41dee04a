// File: api/control.go
// Package api defines Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control exposes runtime metrics of a periodic task instance.
type Control interface {
	// Stats returns a point-in-time snapshot of instance counters:
	// iterations, overruns, final result and recent overrun events.
	Stats() map[string]any
}
