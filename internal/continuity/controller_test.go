package continuity_test

import (
	"testing"
	"time"

	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/model"
)

func TestAsksQuestion(t *testing.T) {
	cases := map[string]bool{
		"Where should I put it?":        true,
		"¿Dónde?":                       true,
		"which one do you mean":         true,
		"how many do you want":          true,
		"You have 3 tomatoes.":          false,
		"Done, 3 tomatoes in the pantry": false,
		"":                              false,
	}
	for text, want := range cases {
		if got := continuity.AsksQuestion(text); got != want {
			t.Errorf("%q: expected %v, got %v", text, want, got)
		}
	}
}

func TestController(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	ctrl := continuity.NewWithClock(15*time.Second, func() time.Time { return current })

	t.Run("Question Activates", func(t *testing.T) {
		s := model.NewSessionState("test")
		if active := ctrl.OnAssistantReply(s, "Where should I put it?"); !active {
			t.Fatalf("expected continuity to activate")
		}
		if !s.ConversationActive || s.LastActivityAt.IsZero() {
			t.Errorf("expected active state with timestamp set")
		}
	})

	t.Run("Plain Answer Deactivates", func(t *testing.T) {
		s := model.NewSessionState("test")
		ctrl.OnAssistantReply(s, "Where should I put it?")
		ctrl.OnAssistantReply(s, "You have 3 tomatoes.")
		if s.ConversationActive || !s.LastActivityAt.IsZero() {
			t.Errorf("expected idle state with timestamp cleared")
		}
	})

	t.Run("Navigation Deactivates Regardless Of Recency", func(t *testing.T) {
		s := model.NewSessionState("test")
		ctrl.OnAssistantReply(s, "Where should I put it?")
		ctrl.OnNavigationDispatched(s)
		if s.ConversationActive {
			t.Errorf("expected navigation dispatch to end continuity")
		}
	})

	t.Run("Error Deactivates", func(t *testing.T) {
		s := model.NewSessionState("test")
		ctrl.OnAssistantReply(s, "Where should I put it?")
		ctrl.OnErrorDispatched(s)
		if s.ConversationActive {
			t.Errorf("expected error dispatch to end continuity")
		}
	})

	t.Run("Timeout Expires After Window", func(t *testing.T) {
		s := model.NewSessionState("test")
		current = base
		ctrl.OnAssistantReply(s, "Where should I put it?")

		if expired := ctrl.CheckTimeout(s, base.Add(10*time.Second)); expired {
			t.Errorf("expected no expiry inside the window")
		}
		if expired := ctrl.CheckTimeout(s, base.Add(16*time.Second)); !expired {
			t.Errorf("expected expiry after the window")
		}
		if s.ConversationActive || !s.LastActivityAt.IsZero() {
			t.Errorf("expected idle state after expiry")
		}
		// Idle sessions never expire again.
		if expired := ctrl.CheckTimeout(s, base.Add(time.Hour)); expired {
			t.Errorf("expected no expiry on idle session")
		}
	})

	t.Run("Touch Refreshes Activity", func(t *testing.T) {
		s := model.NewSessionState("test")
		current = base
		ctrl.OnAssistantReply(s, "Where should I put it?")

		current = base.Add(10 * time.Second)
		ctrl.Touch(s)

		if expired := ctrl.CheckTimeout(s, base.Add(20*time.Second)); expired {
			t.Errorf("expected touch to extend the window")
		}
		if expired := ctrl.CheckTimeout(s, base.Add(26*time.Second)); !expired {
			t.Errorf("expected expiry after the extended window")
		}
	})
}
