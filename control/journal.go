// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO journal of deadline overrun events. Writes happen only on
// the worker's overrun path, which is already off the deadline, so a mutex
// is acceptable here.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// DefaultJournalCapacity bounds the journal when no capacity is given.
const DefaultJournalCapacity = 64

// OverrunEvent describes one detected deadline overrun.
type OverrunEvent struct {
	Iteration uint64        // loop iteration that missed its deadline
	Elapsed   time.Duration // time since instance start at detection
	Overhead  time.Duration // detection time minus the missed deadline
}

// OverrunJournal keeps the most recent overrun events, evicting the oldest
// once the capacity is reached.
type OverrunJournal struct {
	mu       sync.Mutex
	events   *queue.Queue
	capacity int
}

// NewOverrunJournal creates a journal holding up to capacity events.
// Non-positive capacities fall back to DefaultJournalCapacity.
func NewOverrunJournal(capacity int) *OverrunJournal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &OverrunJournal{
		events:   queue.New(),
		capacity: capacity,
	}
}

// Record appends an event, dropping the oldest entry when full.
func (j *OverrunJournal) Record(ev OverrunEvent) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events.Add(ev)
	for j.events.Length() > j.capacity {
		j.events.Remove()
	}
}

// Snapshot returns the retained events, oldest first.
func (j *OverrunJournal) Snapshot() []OverrunEvent {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]OverrunEvent, j.events.Length())
	for i := range out {
		out[i] = j.events.Get(i).(OverrunEvent)
	}
	return out
}

// Len returns the number of retained events.
func (j *OverrunJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.events.Length()
}
