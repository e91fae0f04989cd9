package salesforce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore persists a session so several gateway replicas share one login.
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// RedisStore keeps the session as JSON under a single key.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a store; prefix namespaces the key.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, key: prefix + sessionKey}
}

// Load returns the stored session, or nil when none is stored.
func (s *RedisStore) Load(ctx context.Context) (*Session, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("salesforce: load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// A corrupt entry is treated as absent.
		return nil, nil
	}
	if sess.AccessToken == "" || sess.InstanceURL == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("salesforce: encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("salesforce: save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("salesforce: delete session: %w", err)
	}
	return nil
}
