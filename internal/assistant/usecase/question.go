package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kitchen-voice-assistant/internal/assistant"
	"kitchen-voice-assistant/internal/broker"
	"kitchen-voice-assistant/internal/directive"
	"kitchen-voice-assistant/internal/model"
	"kitchen-voice-assistant/internal/slots"
	"kitchen-voice-assistant/pkg/lmstudio"
)

// answerQuestion handles the free-form path: slot extraction, model call,
// directive execution, final spoken answer.
func (uc *implUseCase) answerQuestion(ctx context.Context, s *model.SessionState, text string) (assistant.Outcome, error) {
	slots.Observe(s, text)
	s.AppendHistory(model.RoleUser, text)

	// A follow-up like "in the pantry" can complete a pending composite
	// action outright; no model round trip needed.
	s.Lock()
	pendingName := ""
	if s.PendingItem != nil {
		pendingName = s.PendingItem.Name
	}
	s.Unlock()
	if action, ok := slots.TryComplete(s); ok {
		return uc.dispatchStore(ctx, s, action, pendingName), nil
	}

	reply, err := uc.llm.ChatCompletion(ctx, uc.buildSystemPrompt(s), toChatMessages(s.HistoryTail(uc.historyWindow)))
	if err != nil {
		kind := assistant.ErrorKindModelUnreachable
		if isTimeout(err) {
			kind = assistant.ErrorKindModelTimeout
		}
		uc.l.Errorf(ctx, "answerQuestion: model call failed: %v", err)
		return uc.failTurn(ctx, s, kind, "the language model is not responding"), nil
	}

	d := directive.Parse(reply)
	if d == nil {
		return uc.finalAnswer(ctx, s, text, reply), nil
	}

	uc.l.Infof(ctx, "answerQuestion: directive action=%s session=%s", d.Action, s.ID)

	if d.NeedsInfo && d.UserMessage != "" {
		// The model is asking for a missing detail; continuity picks the
		// question up and keeps the microphone open.
		return uc.finalAnswer(ctx, s, text, d.UserMessage), nil
	}

	if d.Action == actionSearchIngredients {
		return uc.searchAndMaybeStore(ctx, s, text, d)
	}

	return uc.invokeDirective(ctx, s, text, d)
}

// searchAndMaybeStore resolves an ingredient lookup, seeds the pending item,
// and either completes the composite add or asks for the missing location.
func (uc *implUseCase) searchAndMaybeStore(ctx context.Context, s *model.SessionState, text string, d *directive.Directive) (assistant.Outcome, error) {
	result, err := uc.broker.Invoke(ctx, actionSearchIngredients, d.Params)
	if err != nil {
		return uc.brokerFailure(ctx, s, err), nil
	}
	if !result.Success {
		return uc.functionFailure(ctx, s, result.Error), nil
	}

	var found []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(result.Data, &found); err != nil || len(found) == 0 {
		query, _ := d.Params["query"].(string)
		return uc.finalAnswer(ctx, s, text, fmt.Sprintf("I couldn't find %s in the catalog.", query)), nil
	}

	slots.SeedItem(s, found[0].ID, found[0].Name)

	if action, ok := slots.TryComplete(s); ok {
		return uc.dispatchStore(ctx, s, action, found[0].Name), nil
	}

	return uc.finalAnswer(ctx, s, text, fmt.Sprintf("Where should I put the %s?", found[0].Name)), nil
}

// dispatchStore executes the completed composite add. The pending slots were
// already cleared by TryComplete; on a failure they are restored so the user
// may retry without repeating earlier turns.
func (uc *implUseCase) dispatchStore(ctx context.Context, s *model.SessionState, action slots.CompositeAction, itemName string) assistant.Outcome {
	result, err := uc.broker.Invoke(ctx, actionAddToInventory, action.Args())
	if err != nil {
		slots.Restore(s, itemName, action)
		return uc.brokerFailure(ctx, s, err)
	}
	if !result.Success {
		slots.Restore(s, itemName, action)
		return uc.functionFailure(ctx, s, result.Error)
	}

	name := itemName
	if name == "" {
		name = "item"
	}
	answer := fmt.Sprintf("Done, %d %s of %s in the %s.", action.Quantity, action.Unit, name, strings.ToLower(action.Location))
	return uc.finalAnswer(ctx, s, "", answer)
}

// invokeDirective runs a generic directive action and phrases the result.
func (uc *implUseCase) invokeDirective(ctx context.Context, s *model.SessionState, text string, d *directive.Directive) (assistant.Outcome, error) {
	result, err := uc.broker.Invoke(ctx, d.Action, d.Params)
	if err != nil {
		return uc.brokerFailure(ctx, s, err), nil
	}
	if !result.Success {
		return uc.functionFailure(ctx, s, result.Error), nil
	}

	formatted := formatFunctionResult(d.Action, result.Data)
	answer := uc.phraseResult(ctx, text, formatted)
	return uc.finalAnswer(ctx, s, text, answer), nil
}

// phraseResult asks the model to turn raw function output into a spoken
// sentence. Falls back to the formatted data if the model misbehaves.
func (uc *implUseCase) phraseResult(ctx context.Context, question, formatted string) string {
	user := fmt.Sprintf("Question: %s\n\nFunction data:\n%s", question, formatted)
	phrased, err := uc.llm.ChatCompletion(ctx, resultPrompt, []lmstudio.Message{{Role: lmstudio.RoleUser, Content: user}})
	if err != nil {
		uc.l.Warnf(ctx, "phraseResult: second model call failed, using raw data: %v", err)
		return formatted
	}
	if directive.Parse(phrased) != nil {
		uc.l.Warnf(ctx, "phraseResult: model re-emitted a directive, using raw data")
		return formatted
	}
	return phrased
}

// finalAnswer records the assistant turn, runs continuity, and broadcasts
// the spoken reply.
func (uc *implUseCase) finalAnswer(ctx context.Context, s *model.SessionState, question, answer string) assistant.Outcome {
	s.AppendHistory(model.RoleAssistant, answer)

	wasActive := uc.continuity.Active(s)
	active := uc.continuity.OnAssistantReply(s, answer)

	uc.broadcast(ctx, model.LLMResponseEvent{
		Type:     model.TypeLLMResponse,
		Question: question,
		Response: answer,
	})
	if active && !wasActive {
		uc.broadcast(ctx, model.StatusEvent{Type: model.TypeConversationActive})
	}
	if !active && wasActive {
		uc.broadcast(ctx, model.StatusEvent{Type: model.TypeConversationInactive})
	}

	return assistant.Outcome{
		Success:      true,
		Intent:       assistant.IntentQuestion,
		ResponseText: answer,
	}
}

// brokerFailure maps broker errors to turn outcomes. Pending slots are not
// touched here; composite retries remain possible.
func (uc *implUseCase) brokerFailure(ctx context.Context, s *model.SessionState, err error) assistant.Outcome {
	kind := assistant.ErrorKindFunctionError
	message := err.Error()
	switch {
	case errors.Is(err, broker.ErrNoExecutor):
		kind = assistant.ErrorKindNoExecutor
		message = "no device is connected to run that action"
	case errors.Is(err, broker.ErrCallTimeout):
		kind = assistant.ErrorKindTimeout
		message = "the device took too long to respond"
	}
	uc.l.Warnf(ctx, "brokerFailure: kind=%s err=%v", kind, err)
	return uc.failTurn(ctx, s, kind, message)
}

// functionFailure surfaces an executor-reported failure as the turn's answer.
func (uc *implUseCase) functionFailure(ctx context.Context, s *model.SessionState, detail string) assistant.Outcome {
	if detail == "" {
		detail = "the action failed on the device"
	}
	return uc.failTurn(ctx, s, assistant.ErrorKindFunctionError, detail)
}

// failTurn turns any turn-level error into a structured outcome, broadcasts
// it, and closes the continuous-listening window.
func (uc *implUseCase) failTurn(ctx context.Context, s *model.SessionState, kind, message string) assistant.Outcome {
	wasActive := uc.continuity.Active(s)
	uc.continuity.OnErrorDispatched(s)

	uc.broadcast(ctx, model.ErrorEvent{
		Type:         model.TypeError,
		ErrorType:    kind,
		ErrorMessage: message,
	})
	if wasActive {
		uc.broadcast(ctx, model.StatusEvent{Type: model.TypeConversationInactive})
	}

	return assistant.Outcome{
		Intent:    assistant.IntentQuestion,
		Error:     message,
		ErrorType: kind,
	}
}
