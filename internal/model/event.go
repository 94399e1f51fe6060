package model

import "encoding/json"

// Message types exchanged over the remote executor channel.
const (
	// Outbound to executors
	TypeConnected            = "connected"
	TypePong                 = "pong"
	TypeFunctionRequest      = "function_request"
	TypeNavigation           = "navigation"
	TypeLLMResponse          = "llm_response"
	TypeError                = "error"
	TypeConversationActive   = "conversation_active"
	TypeConversationInactive = "conversation_inactive"
	TypeTranscript           = "transcript"

	// Inbound from executors
	TypePing             = "ping"
	TypeUpdateContext    = "update_context"
	TypeFunctionResponse = "function_response"
)

// InboundFrame is a decoded message received from an executor client.
type InboundFrame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Context   map[string]any  `json:"context,omitempty"`
}

// FunctionRequest asks an attached executor to run a data-access function.
type FunctionRequest struct {
	Type         string         `json:"type"`
	RequestID    string         `json:"request_id"`
	FunctionName string         `json:"function_name"`
	Args         map[string]any `json:"args"`
}

// FunctionResult is the payload an executor returns for a function request.
type FunctionResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NavigationEvent tells clients to navigate to a route.
type NavigationEvent struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Route   string `json:"route"`
}

// LLMResponseEvent carries the assistant's spoken answer.
type LLMResponseEvent struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Response string `json:"response"`
}

// ErrorEvent reports a classified turn-level error to clients.
type ErrorEvent struct {
	Type         string `json:"type"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// StatusEvent carries simple informational messages (connected,
// conversation_active, conversation_inactive).
type StatusEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// TranscriptEvent echoes recognized speech to clients.
type TranscriptEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
