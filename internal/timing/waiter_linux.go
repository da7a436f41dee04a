//go:build linux
// +build linux

// File: internal/timing/waiter_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux absolute-deadline waiter built on timerfd(2) armed with
// TFD_TIMER_ABSTIME and an eventfd(2) wake channel, multiplexed with
// poll(2). Waiting on the absolute clock value rather than a relative
// remainder keeps wait-call overhead out of the deadline sequence.

package timing

import (
	"golang.org/x/sys/unix"
)

// Waiter blocks the calling thread until an absolute monotonic deadline,
// or until another thread calls Wake. A Wake issued while no wait is in
// progress is latched and satisfies the next wait immediately.
type Waiter struct {
	timerfd int
	eventfd int
}

// NewWaiter allocates the timer and wake descriptors.
func NewWaiter() (*Waiter, error) {
	tfd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_CLOEXEC|unix.TFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	efd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		unix.Close(tfd)
		return nil, err
	}
	return &Waiter{timerfd: tfd, eventfd: efd}, nil
}

// WaitUntil suspends until the absolute monotonic deadline expires or a
// wake-up arrives, whichever comes first. It reports woken=true when the
// return was caused by Wake rather than the timer.
func (w *Waiter) WaitUntil(deadline Stamp) (woken bool, err error) {
	its := unix.ItimerSpec{
		Value: unix.NsecToTimespec(deadline.Sec*nsPerSec + deadline.Nsec),
	}
	if err := unix.TimerfdSettime(w.timerfd, unix.TFD_TIMER_ABSTIME, &its, nil); err != nil {
		return false, err
	}
	var buf [8]byte
	for {
		fds := []unix.PollFd{
			{Fd: int32(w.eventfd), Events: unix.POLLIN},
			{Fd: int32(w.timerfd), Events: unix.POLLIN},
		}
		if _, err := unix.Poll(fds, -1); err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		if fds[0].Revents&unix.POLLIN != 0 {
			// Drain the wake counter and disarm the pending timer.
			unix.Read(w.eventfd, buf[:])
			unix.TimerfdSettime(w.timerfd, 0, &unix.ItimerSpec{}, nil)
			return true, nil
		}
		if fds[1].Revents&unix.POLLIN != 0 {
			unix.Read(w.timerfd, buf[:])
			return false, nil
		}
	}
}

// Wake interrupts a wait in progress, or latches for the next one.
// Safe to call from any thread, any number of times.
func (w *Waiter) Wake() error {
	one := [8]byte{0: 1} // any non-zero counter increment wakes the poller
	_, err := unix.Write(w.eventfd, one[:])
	if err == unix.EAGAIN {
		// Counter saturated; the pending wake is already observable.
		return nil
	}
	return err
}

// Close releases both descriptors. The waiter must not be used afterwards.
func (w *Waiter) Close() error {
	err1 := unix.Close(w.timerfd)
	err2 := unix.Close(w.eventfd)
	if err1 != nil {
		return err1
	}
	return err2
}
