package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockStore is an in-memory DocumentStore for testing.
type MockStore struct {
	mu        sync.Mutex
	documents map[uuid.UUID][]byte
}

var _ DocumentStore = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{documents: make(map[uuid.UUID][]byte)}
}

func (m *MockStore) Ping(ctx context.Context) error { return nil }

func (m *MockStore) Close() error { return nil }

func (m *MockStore) SaveDocument(ctx context.Context, id uuid.UUID, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[id] = append([]byte(nil), raw...)
	return nil
}

func (m *MockStore) LoadDocument(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.documents[id], nil
}

func (m *MockStore) ListDocuments(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(m.documents))
	for id := range m.documents {
		ids = append(ids, id)
	}
	return ids, nil
}
