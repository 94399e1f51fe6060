package lmstudio

import "time"

const (
	// DefaultBaseURL is the default LM Studio OpenAI-compatible endpoint
	DefaultBaseURL = "http://localhost:1234/v1"

	// DefaultModel is the model identifier LM Studio exposes by default
	DefaultModel = "local-model"

	// DefaultAPIKey is accepted by LM Studio, which does not check keys
	DefaultAPIKey = "lm-studio"

	// DefaultTimeout is the default HTTP client timeout. Local inference on
	// modest hardware can take tens of seconds per reply.
	DefaultTimeout = 60 * time.Second
)
