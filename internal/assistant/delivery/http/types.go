package http

// commandRequest is the POST /api/command body.
type commandRequest struct {
	Text      string         `json:"text" binding:"required"`
	Context   map[string]any `json:"context,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
}

// commandResponse mirrors the outcome shape executors and the web client
// consume.
type commandResponse struct {
	Success      bool           `json:"success"`
	Intent       string         `json:"intent,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
	ResponseText string         `json:"response_text,omitempty"`
	Error        string         `json:"error,omitempty"`
	ErrorType    string         `json:"error_type,omitempty"`
}

// contextRequest is the POST /api/context body.
type contextRequest struct {
	Context   map[string]any `json:"context" binding:"required"`
	SessionID string         `json:"session_id,omitempty"`
}

// statusResponse is the GET /status body.
type statusResponse struct {
	Running            bool   `json:"running"`
	Model              string `json:"model"`
	ConnectedClients   int    `json:"connected_clients"`
	ConversationActive bool   `json:"conversation_active"`
	LLMConnected       bool   `json:"llm_connected"`
}
