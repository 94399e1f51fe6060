package session

import (
	"context"
	"time"

	"kitchen-voice-assistant/internal/model"
)

// Get returns the session for id, creating it on first use. An empty id maps
// to the default session.
func (m *Manager) Get(id string) *model.SessionState {
	if id == "" {
		id = DefaultID
	}
	if s, ok := m.sessions.Get(id); ok {
		return s
	}
	s := model.NewSessionState(id)
	m.sessions.Add(id, s)
	return s
}

// MergeContext shallow-merges executor context into the named session.
func (m *Manager) MergeContext(sessionID string, ctx map[string]any) {
	m.Get(sessionID).MergeContext(ctx)
}

// ActiveCount reports how many live sessions are currently in continuous
// conversation mode.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, s := range m.sessions.Values() {
		if m.continuity.Active(s) {
			n++
		}
	}
	return n
}

// StartSweep launches the background goroutine that expires quiet continuous
// conversation windows and notifies clients. Stop with Close.
func (m *Manager) StartSweep(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case now := <-ticker.C:
				m.sweep(ctx, now)
			}
		}
	}()
}

// Close stops the sweep goroutine.
func (m *Manager) Close() {
	close(m.stop)
}

func (m *Manager) sweep(ctx context.Context, now time.Time) {
	for _, s := range m.sessions.Values() {
		if !m.continuity.CheckTimeout(s, now) {
			continue
		}
		m.l.Infof(ctx, "session: conversation window expired (session=%s)", s.ID)
		if m.channel == nil {
			continue
		}
		err := m.channel.Broadcast(ctx, model.StatusEvent{
			Type:    model.TypeConversationInactive,
			Message: "conversation timed out",
		})
		if err != nil {
			m.l.Warnf(ctx, "session: broadcast failed: %v", err)
		}
	}
}
