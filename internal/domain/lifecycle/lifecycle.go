// Package lifecycle holds shared settings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
