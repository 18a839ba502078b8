package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// DocumentStore implements ports.DocumentStore on Redis. Each logical key
// holds one JSON document; documents never expire.
type DocumentStore struct {
	client *goredis.Client
	prefix string
}

// NewDocumentStore creates a Redis-backed document store.
func NewDocumentStore(client *goredis.Client) *DocumentStore {
	return &DocumentStore{
		client: client,
		prefix: "doc:",
	}
}

// Get returns the document stored under key.
// Returns nil, nil if the key does not exist.
func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis document get: %w", err)
	}
	return val, nil
}

// Set overwrites the document stored under key. Documents have no TTL; the
// collection persists until cleared externally.
func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis document set: %w", err)
	}
	return nil
}
