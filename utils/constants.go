// File: utils/constants.go
package utils

import "time"

// SessionPrefix is the prefix used for Redis login-session keys.
const SessionPrefix = "session:"

// FlowPrefix is the prefix used for Redis booking-flow keys.
const FlowPrefix = "bookingFlow:"

// DefaultSessionTTL is the time-to-live for login sessions.
const DefaultSessionTTL = 12 * time.Hour

// DefaultFlowTTL is the time-to-live for in-progress booking flows.
const DefaultFlowTTL = 30 * time.Minute
