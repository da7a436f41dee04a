// File: control/journal_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"
	"time"
)

func TestJournalEvictsOldestAtCapacity(t *testing.T) {
	j := NewOverrunJournal(3)
	for i := 1; i <= 5; i++ {
		j.Record(OverrunEvent{Iteration: uint64(i)})
	}
	if j.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", j.Len())
	}
	snap := j.Snapshot()
	for i, want := range []uint64{3, 4, 5} {
		if snap[i].Iteration != want {
			t.Fatalf("snapshot[%d]: got iteration %d, want %d", i, snap[i].Iteration, want)
		}
	}
}

func TestJournalDefaultCapacity(t *testing.T) {
	j := NewOverrunJournal(0)
	for i := 0; i < DefaultJournalCapacity+10; i++ {
		j.Record(OverrunEvent{Iteration: uint64(i)})
	}
	if j.Len() != DefaultJournalCapacity {
		t.Fatalf("Len: got %d, want %d", j.Len(), DefaultJournalCapacity)
	}
}

func TestJournalSnapshotIsCopy(t *testing.T) {
	j := NewOverrunJournal(4)
	j.Record(OverrunEvent{Iteration: 1, Overhead: time.Millisecond})
	snap := j.Snapshot()
	snap[0].Iteration = 99
	if j.Snapshot()[0].Iteration != 1 {
		t.Fatal("snapshot aliases journal storage")
	}
}

func TestMetricsRegistrySnapshot(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Set("last_overrun_ns", int64(1500))
	mr.Set("result", int64(0))

	snap := mr.GetSnapshot()
	if snap["last_overrun_ns"] != int64(1500) {
		t.Fatalf("snapshot value: got %v", snap["last_overrun_ns"])
	}
	if mr.Updated().IsZero() {
		t.Fatal("Updated not advanced by Set")
	}

	snap["result"] = int64(7)
	if mr.GetSnapshot()["result"] != int64(0) {
		t.Fatal("snapshot aliases registry storage")
	}
}
