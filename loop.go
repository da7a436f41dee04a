// File: loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The periodic loop executed once per worker lifetime. Deadlines are the
// arithmetic sequence anchor + k*period, advanced by stamp addition on the
// previous deadline; the current time never feeds back into the sequence,
// which is what bounds jitter and prevents cumulative drift. A single
// overrun re-enters the loop without waiting, so the next deadline still
// comes from the same sequence.

package corelock

import (
	"fmt"
	"os"

	"github.com/momentics/corelock/control"
	"github.com/momentics/corelock/internal/timing"
)

func (in *Instance) loop() {
	var result int64

	in.startTime = timing.Now()
	deadline := in.startTime
	if in.attr.StartAlign > 0 {
		deadline = in.startTime.AlignUp(in.attr.StartAlign)
		if deadline.After(in.startTime) {
			// Hold the first invocation until the aligned anchor.
			in.waiter.WaitUntil(deadline)
		}
	}

	for !in.stopRequested.Load() {
		deadline = deadline.Add(in.attr.Period)
		if in.attr.MaxRunTime > 0 && timing.Now().Sub(in.startTime) >= in.attr.MaxRunTime {
			break
		}
		in.iterations.Add(1)
		result = in.task(in.arg)
		if result != 0 {
			break
		}
		now := timing.Now()
		if now.After(deadline) {
			in.overrun(in, now, deadline)
			continue
		}
		if in.terminated.Load() {
			break
		}
		if _, err := in.waiter.WaitUntil(deadline); err != nil {
			fmt.Fprintf(os.Stderr, "corelock: absolute wait failed: %v\n", err)
			break
		}
	}

	in.metrics.Set("result", result)
	in.result = result
	in.finished.Store(true)
	close(in.done)
}

func overrunNotify(in *Instance, now, deadline timing.Stamp) {
	in.reportOverrun(now, deadline)
}

func overrunStop(in *Instance, now, deadline timing.Stamp) {
	in.reportOverrun(now, deadline)
	fmt.Fprintf(os.Stderr, "corelock: stopping after overrun\n")
	in.stopRequested.Store(true)
}

func overrunIgnore(in *Instance, now, deadline timing.Stamp) {}

func (in *Instance) reportOverrun(now, deadline timing.Stamp) {
	in.overruns.Add(1)
	elapsed := now.Sub(in.startTime)
	overhead := now.Sub(deadline)
	fmt.Fprintf(os.Stderr, "corelock: overrun at %.6f s from start (overhead %d ns)\n",
		elapsed.Seconds(), overhead.Nanoseconds())
	in.journal.Record(control.OverrunEvent{
		Iteration: in.iterations.Load(),
		Elapsed:   elapsed,
		Overhead:  overhead,
	})
	in.metrics.Set("last_overrun_ns", overhead.Nanoseconds())
}
