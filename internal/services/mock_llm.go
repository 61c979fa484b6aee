package services

import (
	"context"
	"sync"

	"github.com/llm-quest/llmquest/pkg/chat"
)

// MockLLMService is a mock implementation of LLMService for testing
type MockLLMService struct {
	InitModelFunc func(ctx context.Context, modelName string) error
	ChatFunc      func(ctx context.Context, messages []chat.Message) (*chat.Response, error)

	// Track calls for testing
	InitModelCalls []string
	ChatCalls      [][]chat.Message

	mu sync.Mutex // protects all fields above
}

var _ LLMService = (*MockLLMService)(nil)

// InitModel mocks model initialization
func (m *MockLLMService) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)

	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

// Chat mocks response generation
func (m *MockLLMService) Chat(ctx context.Context, messages []chat.Message) (*chat.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ChatCalls = append(m.ChatCalls, messages)

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages)
	}
	return &chat.Response{Message: "{}"}, nil
}
