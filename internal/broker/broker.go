package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kitchen-voice-assistant/internal/model"
)

// Invoke sends a function request to all attached executors and waits for
// the first reply carrying the matching request id, or for the timeout,
// whichever comes first. Fails fast with ErrNoExecutor when nobody is
// attached. Out-of-order replies across concurrent invocations are matched
// purely by correlation id.
func (b *Broker) Invoke(ctx context.Context, functionName string, args map[string]any) (model.FunctionResult, error) {
	if b.channel.ClientCount() == 0 {
		return model.FunctionResult{}, ErrNoExecutor
	}

	requestID := uuid.NewString()
	waiter := make(chan model.FunctionResult, 1)

	b.mu.Lock()
	b.pending[requestID] = waiter
	b.mu.Unlock()

	if args == nil {
		args = make(map[string]any)
	}

	req := model.FunctionRequest{
		Type:         model.TypeFunctionRequest,
		RequestID:    requestID,
		FunctionName: functionName,
		Args:         args,
	}

	b.l.Infof(ctx, "broker: dispatching %s (request_id=%s)", functionName, requestID)

	if err := b.channel.Broadcast(ctx, req); err != nil {
		b.drop(requestID)
		return model.FunctionResult{}, fmt.Errorf("broker: broadcast failed: %w", err)
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case result := <-waiter:
		return result, nil
	case <-timer.C:
		b.drop(requestID)
		b.l.Warnf(ctx, "broker: %s timed out after %s (request_id=%s)", functionName, b.timeout, requestID)
		return model.FunctionResult{}, fmt.Errorf("%w: %s", ErrCallTimeout, functionName)
	case <-ctx.Done():
		b.drop(requestID)
		return model.FunctionResult{}, ctx.Err()
	}
}

// Resolve delivers an executor reply to the waiting caller. The registry
// entry is removed under the lock before delivery, so a PendingCall resolves
// at most once: a duplicate reply, or a reply racing the timeout, finds no
// entry and is silently discarded. Reports whether a waiter was resolved.
func (b *Broker) Resolve(requestID string, rawResult json.RawMessage) bool {
	b.mu.Lock()
	waiter, ok := b.pending[requestID]
	if ok {
		delete(b.pending, requestID)
	}
	b.mu.Unlock()

	if !ok {
		return false
	}

	var result model.FunctionResult
	if err := json.Unmarshal(rawResult, &result); err != nil {
		result = model.FunctionResult{
			Success: false,
			Error:   fmt.Sprintf("malformed function result: %v", err),
		}
	}

	// Buffered channel of capacity one; delivery never blocks because the
	// registry guarantees a single sender per id.
	waiter <- result
	return true
}

// PendingCount returns the number of outstanding calls.
func (b *Broker) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) drop(requestID string) {
	b.mu.Lock()
	delete(b.pending, requestID)
	b.mu.Unlock()
}
