//go:build linux
// +build linux

// File: internal/timing/clock_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Monotonic clock source backed by clock_gettime(CLOCK_MONOTONIC).

package timing

import "golang.org/x/sys/unix"

// Now returns the current monotonic time.
func Now() Stamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is always available on Linux.
		return Stamp{}
	}
	return Stamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}
}
