package broker

import "errors"

// Domain-specific errors for the broker package.
var (
	// ErrNoExecutor means no remote executor is attached to the channel.
	// Calls fail fast instead of queuing.
	ErrNoExecutor = errors.New("no remote executor attached")

	// ErrCallTimeout means no matching reply arrived within the deadline.
	ErrCallTimeout = errors.New("function call timed out")
)
