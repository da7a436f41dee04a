//go:build !linux
// +build !linux

// File: internal/timing/clock_generic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable monotonic clock source for platforms without a direct
// clock_gettime binding. Stamps count from process start, which is
// sufficient because only stamp differences are ever observed.

package timing

import "time"

var processStart = time.Now()

// Now returns the current monotonic time.
func Now() Stamp {
	d := time.Since(processStart)
	return Stamp{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}
