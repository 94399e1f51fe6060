package continuity

import (
	"strings"
	"time"

	"kitchen-voice-assistant/internal/model"
)

// Controller decides when continuous conversation mode (follow-up
// utterances without the activation phrase) is entered and left.
//
// State machine: {Idle, ContinuityActive}. Idle → ContinuityActive when the
// assistant's reply asks a question. ContinuityActive → Idle on a
// non-question reply, a navigation dispatch, an error, or inactivity
// timeout. No other transitions.
type Controller struct {
	window time.Duration
	now    func() time.Time
}

// New creates a Controller with the given inactivity window.
func New(window time.Duration) *Controller {
	return &Controller{
		window: window,
		now:    time.Now,
	}
}

// NewWithClock creates a Controller with an injected clock, for tests.
func NewWithClock(window time.Duration, now func() time.Time) *Controller {
	return &Controller{window: window, now: now}
}

// AsksQuestion reports whether the reply prompts the user for more
// information.
func AsksQuestion(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, g := range questionGlyphs {
		if strings.Contains(lower, g) {
			return true
		}
	}
	for _, tok := range interrogativeTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// OnAssistantReply applies a reply to the session: a question activates
// continuity, anything else deactivates it. Returns whether continuity is
// active afterwards.
func (c *Controller) OnAssistantReply(s *model.SessionState, reply string) bool {
	if AsksQuestion(reply) {
		c.activate(s)
		return true
	}
	c.Deactivate(s)
	return false
}

// OnNavigationDispatched ends the continuous-listening window: the user got
// what they asked for.
func (c *Controller) OnNavigationDispatched(s *model.SessionState) {
	c.Deactivate(s)
}

// OnErrorDispatched ends the continuous-listening window on a terminal
// turn error.
func (c *Controller) OnErrorDispatched(s *model.SessionState) {
	c.Deactivate(s)
}

// Touch refreshes the inactivity clock while continuity is active.
func (c *Controller) Touch(s *model.SessionState) {
	s.Lock()
	defer s.Unlock()
	if s.ConversationActive {
		s.LastActivityAt = c.now()
	}
}

// CheckTimeout deactivates continuity after the inactivity window elapses.
// Reports whether an expiry happened on this call.
func (c *Controller) CheckTimeout(s *model.SessionState, now time.Time) bool {
	s.Lock()
	defer s.Unlock()
	if !s.ConversationActive || s.LastActivityAt.IsZero() {
		return false
	}
	if now.Sub(s.LastActivityAt) <= c.window {
		return false
	}
	s.ConversationActive = false
	s.LastActivityAt = time.Time{}
	return true
}

// Active reports whether the session is in continuous conversation mode.
func (c *Controller) Active(s *model.SessionState) bool {
	s.Lock()
	defer s.Unlock()
	return s.ConversationActive
}

// Deactivate leaves continuity mode. Clearing the timestamp together with
// the flag keeps the active-iff-timestamp-set invariant.
func (c *Controller) Deactivate(s *model.SessionState) {
	s.Lock()
	defer s.Unlock()
	s.ConversationActive = false
	s.LastActivityAt = time.Time{}
}

func (c *Controller) activate(s *model.SessionState) {
	s.Lock()
	defer s.Unlock()
	s.ConversationActive = true
	s.LastActivityAt = c.now()
}
