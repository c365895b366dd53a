package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "admin_session:"

	// Timeout for individual Redis operations
	sessionOpTimeout = 5 * time.Second
)

// SessionStore tracks issued admin tokens so a logout can revoke one before it expires.
type SessionStore interface {
	Register(ctx context.Context, adminID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, adminID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, adminID uuid.UUID, tokenID string) error
}

type redisSessionStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisSessionStore(client *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		client: client,
		log:    log,
	}
}

func sessionKey(adminID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, adminID, tokenID)
}

func (s *redisSessionStore) Register(ctx context.Context, adminID uuid.UUID, tokenID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, sessionKey(adminID, tokenID), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("register session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Exists(ctx context.Context, adminID uuid.UUID, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	n, err := s.client.Exists(ctx, sessionKey(adminID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, adminID uuid.UUID, tokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, sessionKey(adminID, tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.WithField("admin_id", adminID).Info("Admin session revoked")
	return nil
}

// statelessSessionStore accepts every signed token until it expires.
// Used when no redis host is configured.
type statelessSessionStore struct{}

func NewStatelessSessionStore() SessionStore {
	return statelessSessionStore{}
}

func (statelessSessionStore) Register(context.Context, uuid.UUID, string, time.Duration) error {
	return nil
}

func (statelessSessionStore) Exists(context.Context, uuid.UUID, string) (bool, error) {
	return true, nil
}

func (statelessSessionStore) Revoke(context.Context, uuid.UUID, string) error {
	return nil
}
