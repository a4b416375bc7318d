package vocabdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client to persist custom Darion keywords.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a new Store with the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: "darion:custom_keywords"}
}

// Add inserts a keyword into the custom vocabulary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a keyword from the custom vocabulary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns all keywords stored in the custom vocabulary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
