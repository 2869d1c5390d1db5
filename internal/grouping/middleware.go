package grouping

import (
	"bytes"
	"context"
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type RequestManager interface {
	HandleRequest(context.Context, func() (*Response, error)) (*Response, error)
}

type MiddlewareOptions struct {
	CreateManager func(
		redis *redis.Client,
		log *zerolog.Logger,
		cacheKey string,
	) RequestManager
	RedisClient *redis.Client

	// CacheKey derives the grouping key from the bound request params.
	// Requests with equal keys collapse into one handler run.
	CacheKey func(c *gin.Context) string
}

func Middleware(o MiddlewareOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := c.MustGet("logger").(*zerolog.Logger)

		cacheKey := o.CacheKey(c)
		if cacheKey == "" {
			log.Warn().Msg("Grouping added to route, but no cache key could be derived")
			c.Next()
			return
		}

		groupingManager := o.CreateManager(o.RedisClient, log, cacheKey)

		requester := func() (*Response, error) {
			bodyWriter := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
			c.Writer = bodyWriter

			// expects the search handler to be called
			c.Next()

			return &Response{
				Code:    c.Writer.Status(),
				Body:    bodyWriter.body.String(),
				Headers: bodyWriter.Header(),
			}, c.Err()
		}

		response, err := groupingManager.HandleRequest(c.Request.Context(), requester)

		if !c.Writer.Written() {
			if err != nil {
				web.HandleError(
					c,
					http.StatusBadRequest,
					"Error running grouped search",
					err,
				)
				return
			}

			for key, values := range response.Headers {
				for _, value := range values {
					c.Writer.Header().Add(key, value)
				}
			}

			c.Status(response.Code)
			c.Data(response.Code, gin.MIMEJSON, []byte(response.Body))
		}

		c.Abort()
	}
}
