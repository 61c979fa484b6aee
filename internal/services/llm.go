package services

import (
	"context"

	"github.com/llm-quest/llmquest/pkg/chat"
)

// LLMService defines the interface for interacting with the LLM API
type LLMService interface {
	// InitModel initializes the LLM model on startup, pulling it if
	// it is not available yet
	InitModel(ctx context.Context, modelName string) error

	// Chat generates a chat response using the LLM
	Chat(ctx context.Context, messages []chat.Message) (*chat.Response, error)
}
