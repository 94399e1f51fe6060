package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/model"
	"kitchen-voice-assistant/internal/session"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockBroadcaster records broadcast events.
type mockBroadcaster struct {
	mu     sync.Mutex
	events []model.StatusEvent
}

func (m *mockBroadcaster) Broadcast(ctx context.Context, message any) error {
	if ev, ok := message.(model.StatusEvent); ok {
		m.mu.Lock()
		m.events = append(m.events, ev)
		m.mu.Unlock()
	}
	return nil
}

func (m *mockBroadcaster) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func TestGet(t *testing.T) {
	t.Run("Creates Then Reuses", func(t *testing.T) {
		m := session.New(&mockLogger{}, continuity.New(15*time.Second), nil, time.Minute)

		a := m.Get("kiosk-1")
		b := m.Get("kiosk-1")
		if a != b {
			t.Errorf("expected the same session instance on repeat lookups")
		}
		if a.ID != "kiosk-1" {
			t.Errorf("unexpected session id %q", a.ID)
		}
	})

	t.Run("Empty ID Maps To Default", func(t *testing.T) {
		m := session.New(&mockLogger{}, continuity.New(15*time.Second), nil, time.Minute)

		s := m.Get("")
		if s.ID != session.DefaultID {
			t.Errorf("expected default session, got %q", s.ID)
		}
		if m.Get(session.DefaultID) != s {
			t.Errorf("expected empty id and default id to share state")
		}
	})
}

func TestMergeContext(t *testing.T) {
	m := session.New(&mockLogger{}, continuity.New(15*time.Second), nil, time.Minute)

	m.MergeContext("", map[string]any{"currentRoute": "/cook", "recipeId": "r-9"})
	m.MergeContext("", map[string]any{"currentRoute": "/inventory"})

	s := m.Get("")
	s.Lock()
	defer s.Unlock()
	if s.Context["currentRoute"] != "/inventory" {
		t.Errorf("expected later merge to win, got %v", s.Context["currentRoute"])
	}
	if s.Context["recipeId"] != "r-9" {
		t.Errorf("expected untouched keys to survive, got %v", s.Context["recipeId"])
	}
}

func TestSweep(t *testing.T) {
	t.Run("Expires Quiet Conversations", func(t *testing.T) {
		cont := continuity.New(30 * time.Millisecond)
		ch := &mockBroadcaster{}
		m := session.New(&mockLogger{}, cont, ch, time.Minute)

		s := m.Get("")
		if !cont.OnAssistantReply(s, "How many do you want?") {
			t.Fatalf("expected question reply to open the conversation window")
		}

		m.StartSweep(context.Background())
		defer m.Close()

		deadline := time.Now().Add(3 * time.Second)
		for ch.count() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		if ch.count() == 0 {
			t.Fatalf("expected a conversation_inactive broadcast")
		}
		ch.mu.Lock()
		ev := ch.events[0]
		ch.mu.Unlock()
		if ev.Type != model.TypeConversationInactive {
			t.Errorf("unexpected event type %q", ev.Type)
		}
		if cont.Active(s) {
			t.Errorf("expected conversation window closed after expiry")
		}
	})

	t.Run("Leaves Idle Sessions Alone", func(t *testing.T) {
		cont := continuity.New(30 * time.Millisecond)
		ch := &mockBroadcaster{}
		m := session.New(&mockLogger{}, cont, ch, time.Minute)

		m.Get("") // never enters conversation mode

		m.StartSweep(context.Background())
		defer m.Close()

		time.Sleep(100 * time.Millisecond)
		if ch.count() != 0 {
			t.Errorf("expected no broadcasts for idle sessions, got %d", ch.count())
		}
	})
}
