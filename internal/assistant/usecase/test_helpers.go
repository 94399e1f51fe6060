package usecase

import (
	"context"
	"sync"
	"time"

	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/model"
	"kitchen-voice-assistant/internal/session"
	"kitchen-voice-assistant/pkg/lmstudio"
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

// Mock LM Studio client for testing. Replies are consumed in order; the last
// one repeats.
type mockLLM struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   []mockLLMCall
}

type mockLLMCall struct {
	system  string
	history []lmstudio.Message
}

func (m *mockLLM) ChatCompletion(ctx context.Context, system string, history []lmstudio.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mockLLMCall{system: system, history: history})
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	reply := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}
	return reply, nil
}

func (m *mockLLM) Ping(ctx context.Context) error { return m.err }
func (m *mockLLM) Model() string                  { return "test-model" }

func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Mock function invoker with canned results per function name.
type mockInvoker struct {
	mu      sync.Mutex
	results map[string]model.FunctionResult
	err     error
	calls   []mockInvoke
}

type mockInvoke struct {
	function string
	args     map[string]any
}

func (m *mockInvoker) Invoke(ctx context.Context, functionName string, args map[string]any) (model.FunctionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mockInvoke{function: functionName, args: args})
	if m.err != nil {
		return model.FunctionResult{}, m.err
	}
	if r, ok := m.results[functionName]; ok {
		return r, nil
	}
	return model.FunctionResult{Success: true}, nil
}

func (m *mockInvoker) invoked(functionName string) *mockInvoke {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.calls {
		if m.calls[i].function == functionName {
			return &m.calls[i]
		}
	}
	return nil
}

// Mock broadcast channel recording every event.
type mockChannel struct {
	mu      sync.Mutex
	clients int
	events  []any
}

func (m *mockChannel) Broadcast(ctx context.Context, message any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, message)
	return nil
}

func (m *mockChannel) ClientCount() int { return m.clients }

func (m *mockChannel) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.events))
	for _, ev := range m.events {
		switch e := ev.(type) {
		case model.NavigationEvent:
			types = append(types, e.Type)
		case model.LLMResponseEvent:
			types = append(types, e.Type)
		case model.ErrorEvent:
			types = append(types, e.Type)
		case model.StatusEvent:
			types = append(types, e.Type)
		case model.TranscriptEvent:
			types = append(types, e.Type)
		}
	}
	return types
}

func (m *mockChannel) hasEvent(eventType string) bool {
	for _, t := range m.eventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

// newTestUseCase wires the orchestrator with mocks and a real session store
// and continuity controller.
func newTestUseCase(llm *mockLLM, invoker *mockInvoker, ch *mockChannel) (*implUseCase, *session.Manager) {
	l := &mockLogger{}
	cont := continuity.New(15 * time.Second)
	sessions := session.New(l, cont, ch, time.Minute)
	return New(l, llm, invoker, ch, sessions, cont, 10), sessions
}
