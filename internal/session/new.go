package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/model"
	pkgLog "kitchen-voice-assistant/pkg/log"
)

const (
	// DefaultID is the session used when the caller does not name one. The
	// kiosk deployment has a single microphone, so this is the common case.
	DefaultID = "default"

	maxSessions = 256
	sweepEvery  = time.Second
	defaultTTL  = 30 * time.Minute
)

// Broadcaster pushes session lifecycle events to attached clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, message any) error
}

// Manager hands out per-conversation state and expires it. Idle sessions age
// out of the cache; the sweep goroutine additionally closes continuous
// conversation windows that went quiet.
type Manager struct {
	l          pkgLog.Logger
	sessions   *expirable.LRU[string, *model.SessionState]
	continuity *continuity.Controller
	channel    Broadcaster

	stop chan struct{}
}

// New creates the Manager. ttl bounds how long an untouched session
// survives. A nil channel may be attached later with SetChannel once the
// transport exists.
func New(l pkgLog.Logger, cont *continuity.Controller, channel Broadcaster, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		l:          l,
		sessions:   expirable.NewLRU[string, *model.SessionState](maxSessions, nil, ttl),
		continuity: cont,
		channel:    channel,
		stop:       make(chan struct{}),
	}
}

// SetChannel attaches the broadcast channel. Call before StartSweep.
func (m *Manager) SetChannel(channel Broadcaster) {
	m.channel = channel
}
