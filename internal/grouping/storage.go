package grouping

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedValue is a captured handler response, compressed into redis so
// followers of a collapsed search can replay it.
type CachedValue struct {
	Code    int                 `json:"code"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

const lockTTL = 30 * time.Second

type storage struct {
	redis   *redis.Client
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func (s *storage) AcquireLock(ctx context.Context, lockKey string) (bool, error) {
	return s.redis.SetNX(ctx, lockKey, "", lockTTL).Result()
}

func (s *storage) ReleaseLock(ctx context.Context, lockKey string) {
	s.redis.Del(context.Background(), lockKey)
}

func (s *storage) StoreResponse(ctx context.Context, responseKey string, response *Response, ttl time.Duration) {
	s.slowLog.Start("grouping:compress")
	encoded, _ := json.Marshal(CachedValue{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	})
	compressed, err := deflate(encoded)
	s.slowLog.Stop("grouping:compress")

	if err != nil {
		s.log.Err(err).Msg("Unable to compress the response body")
		return
	}

	s.redis.Set(ctx, responseKey, compressed, ttl)
}

func (s *storage) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	response, err := s.redis.Get(context.Background(), responseKey).Bytes()

	// no cache hit
	if err == redis.Nil {
		return nil, nil
	}

	// actual error
	if err != nil {
		return nil, err
	}

	s.slowLog.Start("grouping:decompress")
	defer s.slowLog.Stop("grouping:decompress")

	decompressed, err := inflate(response)
	if err != nil {
		return nil, err
	}

	value := CachedValue{}
	if err := json.Unmarshal(decompressed, &value); err != nil {
		return nil, err
	}

	return &value, nil
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	buffer := bytes.NewReader(compressed)
	reader := flate.NewReader(buffer)
	defer reader.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(reader); err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}
