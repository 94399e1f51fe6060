package http

import (
	"kitchen-voice-assistant/internal/assistant"
	pkgLog "kitchen-voice-assistant/pkg/log"
)

// Handler exposes the assistant over the HTTP API.
type Handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new assistant HTTP handler.
func New(l pkgLog.Logger, uc assistant.UseCase) Handler {
	return Handler{
		l:  l,
		uc: uc,
	}
}
