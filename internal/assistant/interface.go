package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Command runs one utterance through the full pipeline: classification,
	// slot reconciliation, model call, directive execution.
	Command(ctx context.Context, input CommandInput) (Outcome, error)

	// UpdateContext shallow-merges client context into the session.
	UpdateContext(ctx context.Context, sessionID string, data map[string]any)

	// Status reports runtime health for the status endpoint.
	Status(ctx context.Context) Status
}
