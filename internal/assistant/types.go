package assistant

// Intent labels on a command outcome.
const (
	IntentNavigation     = "navigation"
	IntentCookingCommand = "cooking_command"
	IntentQuestion       = "question"
)

// CommandInput is one utterance plus optional client context.
type CommandInput struct {
	Text      string
	SessionID string
	Context   map[string]any
}

// Outcome is the structured result of one command turn. Errors never escape
// the orchestrator as Go errors; they land here as ErrorType/Error.
type Outcome struct {
	Success      bool
	Intent       string
	Data         map[string]any
	ResponseText string
	Error        string
	ErrorType    string
}

// Status is the runtime health snapshot for the status endpoint.
type Status struct {
	Running            bool
	Model              string
	ConnectedClients   int
	ConversationActive bool
	LLMConnected       bool
}
