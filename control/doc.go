// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control collects the observability side channel of periodic task
// instances: a bounded journal of recent deadline overruns and a thread-safe
// metrics registry. Nothing here is part of the functional contract; the
// engine works identically with the journal discarded.
package control
