package storage

import (
	"context"

	"github.com/google/uuid"
)

// DocumentStore defines the interface for persisting generated content
// documents, keyed by the ID assigned at generation time. Documents are
// stored as raw JSON text; decoding stays with the caller.
type DocumentStore interface {
	// Ping tests the store connection
	Ping(ctx context.Context) error

	// Close closes the store connection
	Close() error

	// SaveDocument stores a raw document under the given ID
	SaveDocument(ctx context.Context, id uuid.UUID, raw []byte) error

	// LoadDocument retrieves a raw document by ID.
	// Returns nil if the document doesn't exist
	LoadDocument(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ListDocuments returns the IDs of all stored documents
	ListDocuments(ctx context.Context) ([]uuid.UUID, error)
}
