package repositories

import (
	"context"

	"chargili/internal/models"
	"chargili/internal/repositories/cache"
	cachekeys "chargili/internal/utils/cache"
)

// TokenStore keeps the API token and the resolved identity of each console session.
type TokenStore interface {
	SaveToken(ctx context.Context, sid, token string) error
	// Token returns "" when the session has no token.
	Token(ctx context.Context, sid string) (string, error)
	SaveUser(ctx context.Context, sid string, user *models.User) error
	// User returns nil when no identity is cached.
	User(ctx context.Context, sid string) (*models.User, error)
	Delete(ctx context.Context, sid string) error
}

type RedisTokenStore struct {
	cache *cache.CacheService
}

func NewRedisTokenStore(c *cache.CacheService) *RedisTokenStore {
	return &RedisTokenStore{cache: c}
}

func (s *RedisTokenStore) tokenKey(sid string) string {
	return cachekeys.GenerateKey(cachekeys.EntitySession, cachekeys.KeyToken, sid)
}

func (s *RedisTokenStore) userKey(sid string) string {
	return cachekeys.GenerateKey(cachekeys.EntitySession, cachekeys.KeyUser, sid)
}

func (s *RedisTokenStore) SaveToken(ctx context.Context, sid, token string) error {
	return s.cache.Set(ctx, s.tokenKey(sid), token)
}

func (s *RedisTokenStore) Token(ctx context.Context, sid string) (string, error) {
	var token string
	found, err := s.cache.Get(ctx, s.tokenKey(sid), &token)
	if err != nil || !found {
		return "", err
	}
	// Sliding expiry: an active session stays signed in.
	if err := s.cache.Touch(ctx, s.tokenKey(sid), s.userKey(sid)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) SaveUser(ctx context.Context, sid string, user *models.User) error {
	return s.cache.Set(ctx, s.userKey(sid), user)
}

func (s *RedisTokenStore) User(ctx context.Context, sid string) (*models.User, error) {
	var user models.User
	found, err := s.cache.Get(ctx, s.userKey(sid), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, sid string) error {
	return s.cache.Delete(ctx, s.tokenKey(sid), s.userKey(sid))
}
