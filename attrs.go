// File: attrs.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Instance attributes: timing, scheduling class, affinity and overrun
// policy. Attr is a plain value; validation happens in New, never here.

package corelock

import (
	"fmt"
	"time"

	"github.com/momentics/corelock/affinity"
)

// SchedPolicy selects the platform scheduling class for the worker thread.
type SchedPolicy = affinity.Policy

const (
	SchedOther SchedPolicy = affinity.PolicyOther
	SchedFIFO  SchedPolicy = affinity.PolicyFIFO
	SchedRR    SchedPolicy = affinity.PolicyRR
)

// OverrunBehavior selects the reaction to a missed deadline.
type OverrunBehavior int

const (
	// OverrunStop emits a diagnostic and requests a graceful stop.
	OverrunStop OverrunBehavior = iota
	// OverrunNotify emits a diagnostic; the loop continues immediately.
	OverrunNotify
	// OverrunIgnore has no observable effect.
	OverrunIgnore
)

func (b OverrunBehavior) String() string {
	switch b {
	case OverrunStop:
		return "stop"
	case OverrunNotify:
		return "notify"
	case OverrunIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Attr configures one periodic task instance. The instance keeps its own
// copy; mutating an Attr after New has no effect on a live instance.
type Attr struct {
	// Period is the interval between successive deadlines. Must be > 0.
	Period time.Duration

	// Priority is the real-time priority for SchedFIFO/SchedRR (1..99).
	// Must be 0 for SchedOther.
	Priority int

	// Policy is the scheduling class of the worker thread.
	Policy SchedPolicy

	// CPUs restricts the worker thread to the given logical CPUs.
	// Empty means no restriction.
	CPUs []int

	// Overrun selects the missed-deadline reaction.
	Overrun OverrunBehavior

	// MaxRunTime stops the loop gracefully once this much time has passed
	// since the first loop entry. Zero or negative means unbounded.
	MaxRunTime time.Duration

	// StartAlign delays the first deadline to the next multiple of this
	// boundary on the monotonic clock. Zero or negative starts immediately.
	StartAlign time.Duration
}

// DefaultAttr returns the conservative defaults: priority 80, SchedFIFO,
// stop on the first overrun, optionally pinned to the given CPUs.
func DefaultAttr(period time.Duration, cpus ...int) Attr {
	return Attr{
		Period:   period,
		Priority: 80,
		Policy:   SchedFIFO,
		CPUs:     cpus,
		Overrun:  OverrunStop,
	}
}

func (a Attr) validate() error {
	if a.Period <= 0 {
		return fmt.Errorf("period must be positive, got %v", a.Period)
	}
	switch a.Policy {
	case SchedFIFO, SchedRR:
		if a.Priority < 1 || a.Priority > 99 {
			return fmt.Errorf("priority %d out of range 1..99 for policy %s", a.Priority, a.Policy)
		}
	case SchedOther:
		if a.Priority != 0 {
			return fmt.Errorf("priority must be 0 for policy %s, got %d", a.Policy, a.Priority)
		}
	default:
		return fmt.Errorf("unknown scheduling policy %d", a.Policy)
	}
	switch a.Overrun {
	case OverrunStop, OverrunNotify, OverrunIgnore:
	default:
		return fmt.Errorf("unknown overrun behavior %d", a.Overrun)
	}
	for _, cpu := range a.CPUs {
		if cpu < 0 {
			return fmt.Errorf("invalid cpu id %d", cpu)
		}
	}
	return nil
}
