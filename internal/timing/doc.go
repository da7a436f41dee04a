// File: internal/timing/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package timing provides the monotonic time base of the periodic engine:
// normalized (sec, nsec) stamps with exact carry/borrow arithmetic, a
// monotonic clock source, and an interruptible absolute-deadline waiter.
// Platform implementations live in _linux.go / _generic.go files guarded
// by build tags.
package timing
