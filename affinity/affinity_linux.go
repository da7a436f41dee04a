//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation on raw sched syscalls via golang.org/x/sys/unix:
// sched_setaffinity(2) for CPU pinning and sched_setattr(2) for the
// scheduling class and priority. Pid 0 targets the calling thread.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func pinPlatform(cpus []int) error {
	var set unix.CPUSet
	set.Zero()
	for _, cpu := range cpus {
		if cpu < 0 {
			return fmt.Errorf("affinity: invalid cpu id %d", cpu)
		}
		set.Set(cpu)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity: %w", err)
	}
	return nil
}

func currentPlatform() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	// cpu_set_t holds 1024 bits on Linux.
	cpus := make([]int, 0, set.Count())
	for cpu := 0; cpu < 1024 && len(cpus) < set.Count(); cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}

func setSchedulerPlatform(policy Policy, priority int) error {
	attr := unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   policyValue(policy),
		Priority: uint32(priority),
	}
	if err := unix.SchedSetAttr(0, &attr, 0); err != nil {
		return fmt.Errorf("affinity: sched_setattr(%s, %d): %w", policy, priority, err)
	}
	return nil
}

func policyValue(p Policy) uint32 {
	switch p {
	case PolicyFIFO:
		return unix.SCHED_FIFO
	case PolicyRR:
		return unix.SCHED_RR
	default:
		return unix.SCHED_NORMAL
	}
}
