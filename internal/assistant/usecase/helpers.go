package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kitchen-voice-assistant/internal/model"
	"kitchen-voice-assistant/pkg/lmstudio"
)

// buildSystemPrompt augments the base prompt with pending-slot context so the
// model does not ask for details the session already holds.
func (uc *implUseCase) buildSystemPrompt(s *model.SessionState) string {
	s.Lock()
	item := s.PendingItem
	location := s.PendingLocation
	quantity := s.PendingQuantity
	route, _ := s.Context["currentRoute"].(string)
	s.Unlock()

	var b strings.Builder
	b.WriteString(systemPrompt)

	if item != nil {
		fmt.Fprintf(&b, "\n\nA pending item is waiting to be stored: %s (quantity %d). Ask only for the details that are still missing.", item.Name, quantity)
	}
	if location != "" {
		fmt.Fprintf(&b, "\nThe storage location is already known (%s); do not ask for it again.", location)
	}
	if route != "" {
		fmt.Fprintf(&b, "\n\nThe user is currently on the %s screen.", route)
	}

	return b.String()
}

// toChatMessages converts session history to the model client's message type.
func toChatMessages(history []model.ChatMessage) []lmstudio.Message {
	out := make([]lmstudio.Message, len(history))
	for i, msg := range history {
		out[i] = lmstudio.Message{Role: msg.Role, Content: msg.Content}
	}
	return out
}

// inventoryItem is the executor's inventory row shape.
type inventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Location string  `json:"location"`
}

// formatFunctionResult turns raw executor data into text the model can
// phrase. Inventory listings get a line-per-item summary; everything else is
// passed through as compact JSON.
func formatFunctionResult(action string, data json.RawMessage) string {
	if len(data) == 0 {
		return "(no data)"
	}

	if action == actionGetInventory {
		var items []inventoryItem
		if err := json.Unmarshal(data, &items); err == nil && len(items) > 0 {
			var b strings.Builder
			for _, it := range items {
				fmt.Fprintf(&b, "%s: %g %s in the %s\n", it.Name, it.Quantity, it.Unit, strings.ToLower(it.Location))
			}
			return strings.TrimRight(b.String(), "\n")
		}
	}

	return string(data)
}

// isTimeout reports whether the error chain carries a network timeout.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// broadcast pushes one event to all attached clients, logging failures.
func (uc *implUseCase) broadcast(ctx context.Context, message any) {
	if uc.channel == nil {
		return
	}
	if err := uc.channel.Broadcast(ctx, message); err != nil {
		uc.l.Warnf(ctx, "broadcast: %v", err)
	}
}
