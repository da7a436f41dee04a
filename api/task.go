// File: api/task.go
// Package api defines the periodic task contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Task is the user callback invoked once per period on the worker thread.
// It receives the opaque argument supplied at creation time. A zero return
// continues the loop; a non-zero return stops the loop immediately and is
// carried out as the instance's final result through Join.
type Task func(arg any) int64
