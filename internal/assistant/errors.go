package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyUtterance = errors.New("utterance text is empty")
)

// Error kinds surfaced on a failed outcome and in error broadcasts.
const (
	ErrorKindNoExecutor       = "no_executor"
	ErrorKindTimeout          = "timeout"
	ErrorKindModelUnreachable = "model_unreachable"
	ErrorKindModelTimeout     = "model_timeout"
	ErrorKindFunctionError    = "function_error"
)
