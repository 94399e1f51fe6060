package usecase

import (
	"context"

	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/model"
	"kitchen-voice-assistant/internal/session"
	pkgLog "kitchen-voice-assistant/pkg/log"
	"kitchen-voice-assistant/pkg/lmstudio"
)

// FunctionInvoker dispatches a named function to a remote executor and waits
// for the correlated reply.
type FunctionInvoker interface {
	Invoke(ctx context.Context, functionName string, args map[string]any) (model.FunctionResult, error)
}

// Broadcaster pushes events to all attached clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, message any) error
	ClientCount() int
}

type implUseCase struct {
	l             pkgLog.Logger
	llm           lmstudio.ILMStudio
	broker        FunctionInvoker
	channel       Broadcaster
	sessions      *session.Manager
	continuity    *continuity.Controller
	historyWindow int
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	llm lmstudio.ILMStudio,
	broker FunctionInvoker,
	channel Broadcaster,
	sessions *session.Manager,
	cont *continuity.Controller,
	historyWindow int,
) *implUseCase {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &implUseCase{
		l:             l,
		llm:           llm,
		broker:        broker,
		channel:       channel,
		sessions:      sessions,
		continuity:    cont,
		historyWindow: historyWindow,
	}
}
