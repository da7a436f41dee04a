// File: doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package corelock runs a user callback periodically on a dedicated,
// optionally CPU-pinned, real-time scheduled OS thread. Deadlines form an
// arithmetic sequence anchored at the first loop entry, so a slow iteration
// never shifts later ones (no cumulative drift). Missed deadlines dispatch
// a configurable overrun policy: stop, notify or ignore.
//
// Lifecycle: New (dormant) -> Run (running) -> Stop or non-zero task return
// (finished) -> Join (joined) -> Destroy. Terminate forces the worker out of
// its wait without finishing the iteration; it still requires Join before
// Destroy. Cross-thread state is limited to independent single-writer atomic
// flags, no locks on the iteration path.
package corelock
