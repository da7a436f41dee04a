// File: affinity/affinity_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"runtime"
	"testing"
)

func TestPinEmptySetIsNoop(t *testing.T) {
	if err := Pin(nil); err != nil {
		t.Fatalf("Pin(nil): %v", err)
	}
}

func TestSetSchedulerDefaultIsNoop(t *testing.T) {
	if err := SetScheduler(PolicyOther, 0); err != nil {
		t.Fatalf("SetScheduler(other, 0): %v", err)
	}
}

func TestPinToAllowedCPU(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cpus, err := Current()
	if err != nil {
		t.Skipf("affinity not supported here: %v", err)
	}
	if len(cpus) == 0 {
		t.Fatal("Current returned an empty set")
	}
	if err := Pin(cpus[:1]); err != nil {
		t.Fatalf("Pin(%v): %v", cpus[:1], err)
	}
	got, err := Current()
	if err != nil {
		t.Fatalf("Current after Pin: %v", err)
	}
	if len(got) != 1 || got[0] != cpus[0] {
		t.Fatalf("affinity after Pin: got %v, want %v", got, cpus[:1])
	}
	// Restore the original mask for the rest of the test binary.
	if err := Pin(cpus); err != nil {
		t.Fatalf("restore Pin(%v): %v", cpus, err)
	}
}

func TestPinRejectsNegativeCPU(t *testing.T) {
	if err := Pin([]int{-1}); err == nil {
		t.Fatal("Pin(-1) succeeded, want error")
	}
}

func TestPolicyString(t *testing.T) {
	cases := map[Policy]string{PolicyOther: "other", PolicyFIFO: "fifo", PolicyRR: "rr"}
	for p, want := range cases {
		if p.String() != want {
			t.Errorf("Policy(%d).String(): got %q, want %q", p, p.String(), want)
		}
	}
}
