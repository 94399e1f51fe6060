package broker

import (
	"context"
	"sync"
	"time"

	"kitchen-voice-assistant/internal/model"
	pkgLog "kitchen-voice-assistant/pkg/log"
)

const DefaultCallTimeout = 30 * time.Second

// Channel is the outbound side of the bidirectional executor channel.
type Channel interface {
	// Broadcast sends a message to every attached executor.
	Broadcast(ctx context.Context, message any) error

	// ClientCount returns the number of attached executors.
	ClientCount() int
}

// Broker turns an action name plus arguments into an outbound function
// request, correlates the matching inbound reply by request id, and resolves
// or times out the waiting caller. It owns the pending-call registry and the
// executor channel reference instead of leaving them as ambient shared
// state; inject it where needed.
type Broker struct {
	l       pkgLog.Logger
	channel Channel
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan model.FunctionResult
}

// New creates a Broker over the given channel. A non-positive timeout falls
// back to DefaultCallTimeout; callers of Invoke may not bypass it.
func New(l pkgLog.Logger, channel Channel, timeout time.Duration) *Broker {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Broker{
		l:       l,
		channel: channel,
		timeout: timeout,
		pending: make(map[string]chan model.FunctionResult),
	}
}
