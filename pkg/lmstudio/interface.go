package lmstudio

import "context"

// ILMStudio defines the interface for the LM Studio chat client.
// Implementations are safe for concurrent use.
type ILMStudio interface {
	// ChatCompletion sends a system prompt plus conversation history and
	// returns the assistant's reply text
	ChatCompletion(ctx context.Context, system string, history []Message) (string, error)

	// Ping checks that the LM Studio server is reachable
	Ping(ctx context.Context) error

	// Model returns the model being used
	Model() string
}

// New creates a new LM Studio client with the given configuration
func New(cfg Config) (ILMStudio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newLMStudioImpl(cfg), nil
}
