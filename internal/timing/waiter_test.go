// File: internal/timing/waiter_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package timing

import (
	"testing"
	"time"
)

func TestWaiterWaitsUntilDeadline(t *testing.T) {
	w, err := NewWaiter()
	if err != nil {
		t.Fatalf("NewWaiter: %v", err)
	}
	defer w.Close()

	start := Now()
	woken, err := w.WaitUntil(start.Add(20 * time.Millisecond))
	if err != nil {
		t.Fatalf("WaitUntil: %v", err)
	}
	if woken {
		t.Fatal("timer expiry misreported as wake-up")
	}
	if elapsed := Now().Sub(start); elapsed < 19*time.Millisecond {
		t.Fatalf("returned %v after start, before the deadline", elapsed)
	}
}

func TestWaiterPastDeadlineReturnsImmediately(t *testing.T) {
	w, err := NewWaiter()
	if err != nil {
		t.Fatalf("NewWaiter: %v", err)
	}
	defer w.Close()

	start := Now()
	woken, err := w.WaitUntil(start.Add(-10 * time.Millisecond))
	if err != nil {
		t.Fatalf("WaitUntil: %v", err)
	}
	if woken {
		t.Fatal("past deadline misreported as wake-up")
	}
	if elapsed := Now().Sub(start); elapsed > time.Second {
		t.Fatalf("past deadline took %v", elapsed)
	}
}

func TestWaiterWakeInterruptsWait(t *testing.T) {
	w, err := NewWaiter()
	if err != nil {
		t.Fatalf("NewWaiter: %v", err)
	}
	defer w.Close()

	go func() {
		time.Sleep(10 * time.Millisecond)
		w.Wake()
	}()
	start := Now()
	woken, err := w.WaitUntil(start.Add(10 * time.Second))
	if err != nil {
		t.Fatalf("WaitUntil: %v", err)
	}
	if !woken {
		t.Fatal("wake-up not reported")
	}
	if elapsed := Now().Sub(start); elapsed > 5*time.Second {
		t.Fatalf("wake took %v", elapsed)
	}
}

func TestWaiterWakeLatchesBeforeWait(t *testing.T) {
	w, err := NewWaiter()
	if err != nil {
		t.Fatalf("NewWaiter: %v", err)
	}
	defer w.Close()

	if err := w.Wake(); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	start := Now()
	woken, err := w.WaitUntil(start.Add(5 * time.Second))
	if err != nil {
		t.Fatalf("WaitUntil: %v", err)
	}
	if !woken {
		t.Fatal("latched wake-up not observed")
	}
	if elapsed := Now().Sub(start); elapsed > time.Second {
		t.Fatalf("latched wake took %v", elapsed)
	}
}

func TestWaiterReusableAfterWake(t *testing.T) {
	w, err := NewWaiter()
	if err != nil {
		t.Fatalf("NewWaiter: %v", err)
	}
	defer w.Close()

	w.Wake()
	if woken, _ := w.WaitUntil(Now().Add(time.Second)); !woken {
		t.Fatal("first wait: latched wake-up not observed")
	}
	// The wake must not leak into the next wait.
	woken, err := w.WaitUntil(Now().Add(5 * time.Millisecond))
	if err != nil {
		t.Fatalf("second WaitUntil: %v", err)
	}
	if woken {
		t.Fatal("stale wake-up leaked into second wait")
	}
}
