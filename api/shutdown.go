// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies orderly teardown of a component: request stop,
// wait for completion and release resources. Returns an error on failure.
type GracefulShutdown interface {
	Shutdown() error
}
