package main

import (
	"context"
	"fmt"

	"kitchen-voice-assistant/config"
	assistantHTTP "kitchen-voice-assistant/internal/assistant/delivery/http"
	assistantUC "kitchen-voice-assistant/internal/assistant/usecase"
	"kitchen-voice-assistant/internal/broker"
	"kitchen-voice-assistant/internal/continuity"
	"kitchen-voice-assistant/internal/httpserver"
	"kitchen-voice-assistant/internal/hub"
	"kitchen-voice-assistant/internal/middleware"
	"kitchen-voice-assistant/internal/session"
	"kitchen-voice-assistant/pkg/lmstudio"
	"kitchen-voice-assistant/pkg/log"
)

// @title       Kitchen Voice Assistant API
// @description Voice command orchestration over a local LM Studio model and remote executor clients.
// @version     1
// @host        localhost:8765
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Kitchen Voice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "LM Studio: %s model=%s", cfg.LMStudio.BaseURL, cfg.LMStudio.Model)

	// 3. Model client
	llm, err := lmstudio.New(lmstudio.Config{
		BaseURL: cfg.LMStudio.BaseURL,
		APIKey:  cfg.LMStudio.APIKey,
		Model:   cfg.LMStudio.Model,
		Timeout: cfg.LMStudio.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize LM Studio client: ", err)
		return
	}
	if err := llm.Ping(ctx); err != nil {
		logger.Warnf(ctx, "LM Studio not reachable yet (will retry per request): %v", err)
	}

	// 4. Conversation state and executor channel
	cont := continuity.New(cfg.Assistant.ConversationTimeout)

	sessions := session.New(logger, cont, nil, cfg.Assistant.SessionTTL)
	wsHub := hub.New(logger, sessions)
	sessions.SetChannel(wsHub)

	fnBroker := broker.New(logger, wsHub, cfg.Broker.CallTimeout)
	wsHub.SetResolver(fnBroker)

	sessions.StartSweep(ctx)
	defer sessions.Close()

	// 5. Assistant domain
	uc := assistantUC.New(logger, llm, fnBroker, wsHub, sessions, cont, cfg.Assistant.HistoryWindow)
	handler := assistantHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: handler,
		Middleware:       mw,
		WSHandler:        wsHub,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
