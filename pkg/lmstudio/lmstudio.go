package lmstudio

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// newLMStudioImpl creates a new LM Studio implementation
func newLMStudioImpl(cfg Config) *lmstudioImpl {
	return &lmstudioImpl{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		),
		model: cfg.Model,
	}
}

// ChatCompletion sends a system prompt plus conversation history and returns
// the assistant's reply text
func (l *lmstudioImpl) ChatCompletion(ctx context.Context, system string, history []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	for _, msg := range history {
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	resp, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    l.model,
	})
	if err != nil {
		return "", fmt.Errorf("lmstudio: chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("lmstudio: no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("lmstudio: empty message content")
	}
	return content, nil
}

// Ping checks that the LM Studio server is reachable
func (l *lmstudioImpl) Ping(ctx context.Context) error {
	if _, err := l.client.Models.List(ctx); err != nil {
		return fmt.Errorf("lmstudio: server unreachable: %w", err)
	}
	return nil
}

// Model returns the model being used
func (l *lmstudioImpl) Model() string {
	return l.model
}
