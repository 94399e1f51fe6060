package lmstudio

import (
	"time"

	openai "github.com/openai/openai-go/v3"
)

// Config holds LM Studio client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIKey == "" {
		c.APIKey = DefaultAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Message is a single chat turn.
type Message struct {
	Role    string
	Content string
}

// Role constants for chat turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// lmstudioImpl is the internal implementation of ILMStudio
type lmstudioImpl struct {
	client openai.Client
	model  string
}
