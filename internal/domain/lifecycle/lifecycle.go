// Package lifecycle holds limits shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a server.
const DefaultTimeout = 10 * time.Second
