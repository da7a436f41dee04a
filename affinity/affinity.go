// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity and real-time scheduling of the
// calling OS thread. Platform-specific implementations are located in
// separate files (affinity_linux.go, affinity_stub.go) guarded by build tags.
// Callers must hold runtime.LockOSThread for the settings to stick to a
// particular goroutine.

package affinity

// Policy selects the platform scheduling class for a pinned thread.
type Policy int

const (
	// PolicyOther is the default time-sharing class.
	PolicyOther Policy = iota
	// PolicyFIFO is the fixed-priority first-in-first-out real-time class.
	PolicyFIFO
	// PolicyRR is the fixed-priority round-robin real-time class.
	PolicyRR
)

func (p Policy) String() string {
	switch p {
	case PolicyFIFO:
		return "fifo"
	case PolicyRR:
		return "rr"
	default:
		return "other"
	}
}

// Pin restricts the current OS thread to the given logical CPUs.
// An empty set means no restriction and is a no-op.
func Pin(cpus []int) error {
	if len(cpus) == 0 {
		return nil
	}
	return pinPlatform(cpus)
}

// Current returns the logical CPUs the current thread may run on.
func Current() ([]int, error) {
	return currentPlatform()
}

// SetScheduler assigns the scheduling class and priority to the current
// OS thread. PolicyOther with priority 0 is a no-op, so unprivileged
// callers can run without a real-time class.
func SetScheduler(policy Policy, priority int) error {
	if policy == PolicyOther && priority == 0 {
		return nil
	}
	return setSchedulerPlatform(policy, priority)
}
