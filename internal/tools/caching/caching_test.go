package caching

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCacherStore(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	cacher := NewRedisCache(redisClient)

	t.Run("should compress before writing", func(t *testing.T) {
		value := cachedThing{Name: "quote", Count: 3}

		encoded, _ := json.Marshal(value)
		compressed, _ := deflate(encoded)

		redisMock.ExpectSetEx("key", compressed, time.Minute).SetVal("OK")

		assert.Nil(t, cacher.Store(context.Background(), "key", value, time.Minute))
		assert.Nil(t, redisMock.ExpectationsWereMet())
	})
}

func TestCacherFetch(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	cacher := NewRedisCache(redisClient)

	t.Run("should decompress a hit into the destination", func(t *testing.T) {
		encoded, _ := json.Marshal(cachedThing{Name: "quote", Count: 3})
		compressed, _ := deflate(encoded)

		redisMock.ExpectGet("key").SetVal(string(compressed))

		destination := cachedThing{}
		assert.True(t, cacher.Fetch(context.Background(), "key", &destination))
		assert.Equal(t, cachedThing{Name: "quote", Count: 3}, destination)
	})

	t.Run("should report a miss", func(t *testing.T) {
		redisMock.ExpectGet("key").RedisNil()

		destination := cachedThing{}
		assert.False(t, cacher.Fetch(context.Background(), "key", &destination))
	})

	t.Run("should treat an undecodable value as a miss", func(t *testing.T) {
		redisMock.ExpectGet("key").SetVal("garbage")

		destination := cachedThing{}
		assert.False(t, cacher.Fetch(context.Background(), "key", &destination))
	})
}

func TestCacherDelete(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	cacher := NewRedisCache(redisClient)

	redisMock.ExpectDel("key").SetVal(1)

	assert.Nil(t, cacher.Delete(context.Background(), "key"))
}
