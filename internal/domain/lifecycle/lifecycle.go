// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown of servers and stores.
const DefaultTimeout = 15 * time.Second
