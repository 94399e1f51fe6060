package usecase

import (
	"context"
	"strings"

	"kitchen-voice-assistant/internal/assistant"
	"kitchen-voice-assistant/internal/intent"
	"kitchen-voice-assistant/internal/model"
)

// Command runs one utterance through the pipeline: classify, reconcile
// slots, consult the model, execute directives. Every failure mode is
// captured here and returned as a structured outcome; nothing terminates the
// session.
func (uc *implUseCase) Command(ctx context.Context, input assistant.CommandInput) (assistant.Outcome, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.Outcome{}, assistant.ErrEmptyUtterance
	}

	s := uc.sessions.Get(input.SessionID)
	if input.Context != nil {
		s.MergeContext(input.Context)
	}
	uc.continuity.Touch(s)

	uc.broadcast(ctx, model.TranscriptEvent{Type: model.TypeTranscript, Text: text})

	res := intent.Classify(text)
	uc.l.Infof(ctx, "Command: session=%s intent=%s text=%q", s.ID, res.Kind, text)

	switch res.Kind {
	case intent.KindNavigation:
		wasActive := uc.continuity.Active(s)
		uc.continuity.OnNavigationDispatched(s)
		uc.broadcast(ctx, model.NavigationEvent{
			Type:    model.TypeNavigation,
			Command: text,
			Route:   res.Route,
		})
		if wasActive {
			uc.broadcast(ctx, model.StatusEvent{Type: model.TypeConversationInactive})
		}
		return assistant.Outcome{
			Success: true,
			Intent:  assistant.IntentNavigation,
			Data:    map[string]any{"route": res.Route},
		}, nil

	case intent.KindCookingCommand:
		// Executed locally by the client; no model or broker involved.
		return assistant.Outcome{
			Success: true,
			Intent:  assistant.IntentCookingCommand,
			Data:    map[string]any{"command": string(res.Command)},
		}, nil
	}

	return uc.answerQuestion(ctx, s, text)
}

// UpdateContext shallow-merges client context into the session.
func (uc *implUseCase) UpdateContext(ctx context.Context, sessionID string, data map[string]any) {
	uc.sessions.MergeContext(sessionID, data)
	uc.l.Debugf(ctx, "UpdateContext: session=%s keys=%d", sessionID, len(data))
}

// Status reports runtime health for the status endpoint.
func (uc *implUseCase) Status(ctx context.Context) assistant.Status {
	return assistant.Status{
		Running:            true,
		Model:              uc.llm.Model(),
		ConnectedClients:   uc.channel.ClientCount(),
		ConversationActive: uc.sessions.ActiveCount() > 0,
		LLMConnected:       uc.llm.Ping(ctx) == nil,
	}
}
