// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the public contracts of the corelock library:
// the periodic task callback type, the shared error taxonomy, and the
// observability and shutdown interfaces implemented by instances.
package api
