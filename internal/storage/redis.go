package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const documentKeyPrefix = "document:"

// DefaultDocumentTTL is how long a generated document stays cached.
const DefaultDocumentTTL = 7 * 24 * time.Hour

// RedisStore implements the DocumentStore interface using Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Ensure RedisStore implements DocumentStore interface
var _ DocumentStore = (*RedisStore)(nil)

// NewRedisStore creates a new Redis store instance
func NewRedisStore(redisAddr string, ttl time.Duration, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if ttl <= 0 {
		ttl = DefaultDocumentTTL
	}

	return &RedisStore{
		client: rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 10
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStore) SaveDocument(ctx context.Context, id uuid.UUID, raw []byte) error {
	key := documentKeyPrefix + id.String()
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("failed to save document: %w", err)
	}

	r.logger.Debug("Document saved", "key", key, "size", len(raw))
	return nil
}

func (r *RedisStore) LoadDocument(ctx context.Context, id uuid.UUID) ([]byte, error) {
	key := documentKeyPrefix + id.String()
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.logger.Debug("Document not found", "key", key)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return data, nil
}

func (r *RedisStore) ListDocuments(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	iter := r.client.Scan(ctx, 0, documentKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw := iter.Val()[len(documentKeyPrefix):]
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn("Skipping document key with invalid ID", "key", iter.Val())
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return ids, nil
}
