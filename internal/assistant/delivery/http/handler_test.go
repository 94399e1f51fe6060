package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kitchen-voice-assistant/internal/assistant"
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

// Mock use case with func fields
type mockUseCase struct {
	commandFunc func(ctx context.Context, input assistant.CommandInput) (assistant.Outcome, error)
	updateFunc  func(ctx context.Context, sessionID string, data map[string]any)
	statusFunc  func(ctx context.Context) assistant.Status
}

func (m *mockUseCase) Command(ctx context.Context, input assistant.CommandInput) (assistant.Outcome, error) {
	if m.commandFunc != nil {
		return m.commandFunc(ctx, input)
	}
	return assistant.Outcome{}, nil
}

func (m *mockUseCase) UpdateContext(ctx context.Context, sessionID string, data map[string]any) {
	if m.updateFunc != nil {
		m.updateFunc(ctx, sessionID, data)
	}
}

func (m *mockUseCase) Status(ctx context.Context) assistant.Status {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return assistant.Status{}
}

func setupRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)
	r := gin.New()
	r.POST("/api/command", h.Command)
	r.POST("/api/context", h.UpdateContext)
	r.GET("/status", h.Status)
	return r
}

func TestCommandHandler(t *testing.T) {
	t.Run("Returns Outcome Shape", func(t *testing.T) {
		uc := &mockUseCase{
			commandFunc: func(ctx context.Context, input assistant.CommandInput) (assistant.Outcome, error) {
				if input.Text != "go to recipes" {
					t.Errorf("unexpected text %q", input.Text)
				}
				return assistant.Outcome{
					Success: true,
					Intent:  assistant.IntentNavigation,
					Data:    map[string]any{"route": "/recipes"},
				}, nil
			},
		}
		r := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{"text":"go to recipes"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status %d", w.Code)
		}
		var resp commandResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Intent != "navigation" {
			t.Errorf("unexpected response %+v", resp)
		}
		if resp.Data["route"] != "/recipes" {
			t.Errorf("unexpected route %v", resp.Data["route"])
		}
	})

	t.Run("Missing Text Is Bad Request", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Failed Turn Still Returns 200", func(t *testing.T) {
		uc := &mockUseCase{
			commandFunc: func(ctx context.Context, input assistant.CommandInput) (assistant.Outcome, error) {
				return assistant.Outcome{
					Intent:    assistant.IntentQuestion,
					Error:     "no device is connected to run that action",
					ErrorType: assistant.ErrorKindNoExecutor,
				}, nil
			},
		}
		r := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{"text":"what do I have"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("turn-level errors ride a 200, got %d", w.Code)
		}
		var resp commandResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Success || resp.ErrorType != assistant.ErrorKindNoExecutor {
			t.Errorf("unexpected response %+v", resp)
		}
	})
}

func TestUpdateContextHandler(t *testing.T) {
	var gotSession string
	var gotData map[string]any
	uc := &mockUseCase{
		updateFunc: func(ctx context.Context, sessionID string, data map[string]any) {
			gotSession = sessionID
			gotData = data
		},
	}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/context", strings.NewReader(`{"context":{"currentRoute":"/cook"},"session_id":"kiosk-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if gotSession != "kiosk-1" {
		t.Errorf("unexpected session %q", gotSession)
	}
	if gotData["currentRoute"] != "/cook" {
		t.Errorf("unexpected context %v", gotData)
	}
}

func TestStatusHandler(t *testing.T) {
	uc := &mockUseCase{
		statusFunc: func(ctx context.Context) assistant.Status {
			return assistant.Status{
				Running:          true,
				Model:            "test-model",
				ConnectedClients: 1,
				LLMConnected:     true,
			}
		},
	}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp statusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Running || resp.Model != "test-model" || resp.ConnectedClients != 1 {
		t.Errorf("unexpected response %+v", resp)
	}
}
