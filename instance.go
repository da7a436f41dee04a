// File: instance.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Instance lifecycle controller. Exactly two actors touch an instance:
// the external controller (any goroutine calling Run/Stop/Join/Terminate/
// Destroy) and the single worker thread running the loop. All cross-actor
// state is carried by independent single-writer atomic flags; the done
// channel doubles as the worker handle for Join.

package corelock

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/momentics/corelock/affinity"
	"github.com/momentics/corelock/api"
	"github.com/momentics/corelock/control"
	"github.com/momentics/corelock/internal/timing"
)

// Instance is one periodic task: a callback, its schedule and the worker
// thread executing it. Create with New, start with Run.
type Instance struct {
	task api.Task
	arg  any
	attr Attr

	stopRequested atomic.Bool // any caller -> worker
	finished      atomic.Bool // worker -> any caller
	joined        atomic.Bool // set by the joining caller, guards Destroy
	started       atomic.Bool // Run guard
	terminated    atomic.Bool // Terminate -> worker
	destroyed     atomic.Bool // Destroy guard

	startTime timing.Stamp // written once by the worker at loop entry
	result    int64        // written by the worker before done closes
	done      chan struct{}

	waiter  *timing.Waiter
	journal *control.OverrunJournal
	metrics *control.MetricsRegistry
	overrun func(in *Instance, now, deadline timing.Stamp)

	iterations atomic.Uint64
	overruns   atomic.Uint64
}

var (
	_ api.Control          = (*Instance)(nil)
	_ api.GracefulShutdown = (*Instance)(nil)
)

// New validates attr and allocates a dormant instance. The worker thread is
// not started; scheduling parameters are applied when Run spawns it.
func New(task api.Task, arg any, attr Attr) (*Instance, error) {
	if task == nil {
		return nil, fmt.Errorf("%w: nil task", api.ErrCreate)
	}
	if err := attr.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrCreate, err)
	}
	w, err := timing.NewWaiter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrCreate, err)
	}
	in := &Instance{
		task:    task,
		arg:     arg,
		attr:    attr,
		done:    make(chan struct{}),
		waiter:  w,
		journal: control.NewOverrunJournal(control.DefaultJournalCapacity),
		metrics: control.NewMetricsRegistry(),
	}
	switch attr.Overrun {
	case OverrunNotify:
		in.overrun = overrunNotify
	case OverrunIgnore:
		in.overrun = overrunIgnore
	default:
		in.overrun = overrunStop
	}
	return in, nil
}

// Run spawns the worker thread and returns once it is pinned and scheduled.
// The worker locks its OS thread, applies the CPU affinity set and the
// scheduling class, then enters the periodic loop. A platform refusal
// (typically EPERM for a real-time class) is returned as ErrStart and the
// instance stays dormant, so the caller may retry or destroy it.
// Run on a non-dormant instance is a caller error and returns ErrStart.
func (in *Instance) Run() error {
	if in.destroyed.Load() {
		return fmt.Errorf("%w: instance destroyed", api.ErrStart)
	}
	if !in.started.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: already started", api.ErrStart)
	}
	setup := make(chan error, 1)
	go in.worker(setup)
	if err := <-setup; err != nil {
		in.started.Store(false)
		return fmt.Errorf("%w: %v", api.ErrStart, err)
	}
	return nil
}

func (in *Instance) worker(setup chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := affinity.Pin(in.attr.CPUs); err != nil {
		setup <- err
		return
	}
	if err := affinity.SetScheduler(in.attr.Policy, in.attr.Priority); err != nil {
		setup <- err
		return
	}
	setup <- nil
	in.loop()
}

// Stop requests a graceful stop. The worker finishes its current iteration
// first, so at most one more task invocation happens after Stop returns.
// Safe to call from any goroutine, any number of times; never blocks.
func (in *Instance) Stop() {
	in.stopRequested.Store(true)
	in.waiter.Wake()
}

// IsFinished reports whether the worker has exited its loop. Safe to poll.
func (in *Instance) IsFinished() bool {
	return in.finished.Load()
}

// Join blocks until the worker exits and returns its result: the last
// non-zero task return, or zero on a graceful stop. Join marks the instance
// joinable for Destroy. Joining a never-started instance returns ErrJoin.
func (in *Instance) Join() (int64, error) {
	if !in.started.Load() {
		return 0, fmt.Errorf("%w: instance not started", api.ErrJoin)
	}
	<-in.done
	in.joined.Store(true)
	return in.result, nil
}

// Terminate forces the worker out of its absolute wait immediately and
// prevents any further task invocation. A callback already executing cannot
// be preempted in this runtime; it runs to completion, and any resources it
// holds when Terminate is issued are left in an undefined state. Join is
// still required before Destroy.
func (in *Instance) Terminate() error {
	if !in.started.Load() {
		return fmt.Errorf("%w: instance not started", api.ErrTerminate)
	}
	in.terminated.Store(true)
	in.stopRequested.Store(true)
	if err := in.waiter.Wake(); err != nil {
		return fmt.Errorf("%w: %v", api.ErrTerminate, err)
	}
	return nil
}

// Destroy releases the instance's platform resources. It refuses with
// ErrBusy while a started worker has not been joined; destruction is
// enforced, not advisory. Destroying a dormant, never-started instance is
// allowed. Repeated Destroy calls are no-ops.
func (in *Instance) Destroy() error {
	if in.started.Load() && !in.joined.Load() {
		return api.ErrBusy
	}
	if !in.destroyed.CompareAndSwap(false, true) {
		return nil
	}
	return in.waiter.Close()
}

// Shutdown stops, joins and destroys the instance in one call.
func (in *Instance) Shutdown() error {
	in.Stop()
	if _, err := in.Join(); err != nil {
		return err
	}
	return in.Destroy()
}

// Stats returns a snapshot of instance counters and the recent-overrun
// journal. The result is only populated after the worker has finished.
func (in *Instance) Stats() map[string]any {
	s := in.metrics.GetSnapshot()
	s["iterations"] = in.iterations.Load()
	s["overruns"] = in.overruns.Load()
	finished := in.finished.Load()
	s["finished"] = finished
	if finished {
		s["result"] = in.result
	}
	s["recent_overruns"] = in.journal.Snapshot()
	return s
}
