package booking

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/tools/caching"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("booking session not found")

// Sessions expire after an hour of inactivity; every save refreshes the
// clock. An abandoned checkout simply ages out, no cleanup call needed.
const sessionTTL = 1 * time.Hour

type SessionStore struct {
	cache *caching.Cacher
}

func NewSessionStore(redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		cache: caching.NewRedisCache(redisClient),
	}
}

func sessionKey(id string) string {
	return "booking-session:" + id
}

func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	return s.cache.Store(ctx, sessionKey(session.Id), session, sessionTTL)
}

func (s *SessionStore) Find(ctx context.Context, id string) (*Session, error) {
	session := &Session{}
	if !s.cache.Fetch(ctx, sessionKey(id), session) {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}
