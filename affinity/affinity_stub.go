//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without thread affinity or real-time
// class control. Requests for either are reported as unsupported.

package affinity

import (
	"fmt"

	"github.com/momentics/corelock/api"
)

func pinPlatform(cpus []int) error {
	return fmt.Errorf("affinity: %w on this platform", api.ErrNotSupported)
}

func currentPlatform() ([]int, error) {
	return nil, fmt.Errorf("affinity: %w on this platform", api.ErrNotSupported)
}

func setSchedulerPlatform(policy Policy, priority int) error {
	return fmt.Errorf("affinity: %w on this platform", api.ErrNotSupported)
}
