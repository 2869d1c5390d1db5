package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// One client per concern so a busy response cache cannot starve session
// reads. New clients get their own constructor here when a concern needs
// to be split out.

type Factory struct {
	sessions       *redis.Client
	responsesCache *redis.Client
}

func clientFromEnv(envName string) *redis.Client {
	opt, err := redis.ParseURL(os.Getenv(envName))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt)
}

func New() *Factory {
	return &Factory{
		sessions:       clientFromEnv("SESSIONS_REDIS_URI"),
		responsesCache: clientFromEnv("RESPONSES_CACHE_REDIS_URI"),
	}
}

// SessionsClient backs booking-session storage.
func (f *Factory) SessionsClient() *redis.Client {
	return f.sessions
}

// ResponsesCacheClient backs search grouping and short-lived response caches.
func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
