// Package grouping collapses identical concurrent searches. The first
// request for a cache key runs the handler and stores the response in
// redis for a short window; concurrent duplicates wait on a redis lock and
// replay the stored response instead of hitting the reservation store
// again.
package grouping

import (
	"context"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/tools/slowlog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Response struct {
	Code    int
	Headers map[string][]string
	Body    string
}

type Storage interface {
	AcquireLock(ctx context.Context, lockKey string) (bool, error)
	ReleaseLock(ctx context.Context, lockKey string)
	StoreResponse(ctx context.Context, responseKey string, response *Response, ttl time.Duration)
	FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error)
}

// Availability answers age quickly; failures should not stick around.
const (
	successTTL = 1 * time.Minute
	failureTTL = 15 * time.Second
	pollDelay  = 400 * time.Millisecond
)

type requestManager struct {
	cache    Storage
	log      *zerolog.Logger
	slowLog  slowlog.Logger
	cacheKey string
}

func isStatusCodeAcceptable(code int) bool {
	return code >= 200 && code < 300
}

func (m *requestManager) runAndStore(responseKey string, requester func() (*Response, error)) (*Response, error) {
	m.slowLog.Start("grouping:runAndStore")
	defer m.slowLog.Stop("grouping:runAndStore")

	response, err := requester()

	if err != nil {
		m.cache.ReleaseLock(context.Background(), m.cacheKey)
		m.log.Err(err).Msg("Grouped search failed")
		return nil, err
	}

	ttl := successTTL
	if !isStatusCodeAcceptable(response.Code) {
		ttl = failureTTL
	}

	m.cache.StoreResponse(context.Background(), responseKey, response, ttl)
	m.cache.ReleaseLock(context.Background(), m.cacheKey)

	return response, nil
}

func (m *requestManager) requestOrWait(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	select {
	case <-ctx.Done():
		return nil, context.Canceled
	default:
	}

	responseKey := "res:" + m.cacheKey

	m.slowLog.Start("grouping:fetchFromCache")
	cached, err := m.cache.FetchResponse(ctx, responseKey)
	m.slowLog.Stop("grouping:fetchFromCache")

	if err != nil {
		m.log.Err(err).
			Str("label", "cache").
			Bool("hit", false).
			Str("key", responseKey).
			Msg("Error fetching from cache")

		return requester()
	}

	if cached != nil {
		m.log.Info().
			Str("label", "cache").
			Bool("hit", true).
			Str("key", m.cacheKey).
			Msg("Used cached search response")

		if cached.Headers == nil {
			cached.Headers = make(map[string][]string)
		}

		cached.Headers["x-search-grouping"] = []string{"hit"}

		return &Response{
			Code:    cached.Code,
			Body:    cached.Body,
			Headers: cached.Headers,
		}, nil
	}

	canMakeTheRequest, err := m.cache.AcquireLock(ctx, m.cacheKey)
	if err != nil || canMakeTheRequest {
		return m.runAndStore(responseKey, requester)
	}

	time.Sleep(pollDelay)

	return m.requestOrWait(ctx, requester)
}

func (m *requestManager) HandleRequest(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	m.slowLog.Start("grouping:HandleRequest")
	defer m.slowLog.Stop("grouping:HandleRequest")
	return m.requestOrWait(ctx, requester)
}

func NewRequestManager(redisClient *redis.Client, log *zerolog.Logger, cacheKey string) RequestManager {
	groupingLog := log.With().Str("groupingId", uuid.New().String()).Logger()
	slowLog := slowlog.CreateLogger(&groupingLog)

	return &requestManager{
		cacheKey: cacheKey,
		cache: &storage{
			redis:   redisClient,
			log:     &groupingLog,
			slowLog: slowLog,
		},
		log:     &groupingLog,
		slowLog: slowLog,
	}
}
