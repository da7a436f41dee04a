// File: internal/timing/stamp.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Normalized monotonic timestamps and deadline arithmetic.

package timing

import "time"

const nsPerSec = int64(time.Second)

// Stamp is a monotonic-clock timestamp split into whole seconds and
// nanoseconds. A normalized Stamp always keeps Nsec in [0, 1e9).
type Stamp struct {
	Sec  int64
	Nsec int64
}

// Add returns the stamp advanced by d, renormalizing the nanosecond field
// across the second boundary. Deadline sequences are built by repeated Add
// on the previous deadline, never on the current time, so the sequence stays
// an exact arithmetic progression.
func (s Stamp) Add(d time.Duration) Stamp {
	s.Sec += int64(d / time.Second)
	s.Nsec += int64(d % time.Second)
	if s.Nsec >= nsPerSec {
		s.Sec++
		s.Nsec -= nsPerSec
	} else if s.Nsec < 0 {
		s.Sec--
		s.Nsec += nsPerSec
	}
	return s
}

// Sub returns s - o as a duration, borrowing across the second boundary.
func (s Stamp) Sub(o Stamp) time.Duration {
	sec := s.Sec - o.Sec
	nsec := s.Nsec - o.Nsec
	if nsec < 0 {
		sec--
		nsec += nsPerSec
	}
	return time.Duration(sec*nsPerSec + nsec)
}

// After reports whether s is strictly later than o.
func (s Stamp) After(o Stamp) bool {
	if s.Sec != o.Sec {
		return s.Sec > o.Sec
	}
	return s.Nsec > o.Nsec
}

// AlignUp rounds s up to the next multiple of boundary on the monotonic
// timeline. A stamp already on the boundary is returned unchanged.
// Boundaries <= 0 leave the stamp unchanged.
func (s Stamp) AlignUp(boundary time.Duration) Stamp {
	b := boundary.Nanoseconds()
	if b <= 0 {
		return s
	}
	total := s.Sec*nsPerSec + s.Nsec
	if rem := total % b; rem != 0 {
		total += b - rem
	}
	return Stamp{Sec: total / nsPerSec, Nsec: total % nsPerSec}
}
