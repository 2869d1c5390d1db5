// Package store is the typed client for the external reservation store.
// The store owns all reservation rows and the staff user accounts; this
// service only ever talks to it over HTTP and holds no reservation state
// of its own.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client

	sessions *sessionHolder
}

type Option func(c *Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// NewClient reads RESERVATION_STORE_URL and RESERVATION_STORE_TOKEN from
// the environment; options override for tests.
func NewClient(logger *zerolog.Logger, options ...Option) *Client {
	transport := http.DefaultTransport.(*http.Transport)

	client := &Client{
		baseURL:  os.Getenv("RESERVATION_STORE_URL"),
		apiToken: os.Getenv("RESERVATION_STORE_TOKEN"),
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &requesting.InterceptorTransport{
				Transport: transport,
				Middlewares: []requesting.TransportMiddleware{
					requesting.NewLoggingTransportMiddleware(logger),
				},
			},
		},
		sessions: newSessionHolder(),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) authorize(request *http.Request, bearer string) {
	if bearer == "" {
		bearer = c.apiToken
	}

	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}
}

func jsonBody(payload any) (io.Reader, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(encoded), nil
}

func (c *Client) doJSON(
	ctx context.Context,
	method string,
	url string,
	payload any,
	destination any,
) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	c.authorize(request, "")

	response, storeErr := requesting.ClassifyResponse(c.http.Do(request))
	if storeErr != nil {
		return storeErr
	}
	defer response.Body.Close()

	if destination == nil {
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(destination); err != nil {
		return schema.NewUpstreamError(fmt.Sprintf("could not decode store response: %s", err))
	}

	return nil
}
