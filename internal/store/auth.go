package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrNoSession = errors.New("no active session")

// Session is the staff sign-in state the admin surface is gated on.
type Session struct {
	AccessToken string    `json:"accessToken"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type sessionHolder struct {
	sync.Mutex
	current     *Session
	subscribers []func(*Session)
}

func newSessionHolder() *sessionHolder {
	return &sessionHolder{}
}

func (h *sessionHolder) set(session *Session) {
	h.Lock()
	h.current = session
	subscribers := make([]func(*Session), len(h.subscribers))
	copy(subscribers, h.subscribers)
	h.Unlock()

	for _, subscriber := range subscribers {
		subscriber(session)
	}
}

func (h *sessionHolder) get() *Session {
	h.Lock()
	defer h.Unlock()
	return h.current
}

func (h *sessionHolder) subscribe(fn func(*Session)) {
	h.Lock()
	h.subscribers = append(h.subscribers, fn)
	h.Unlock()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ParseSessionToken reads the claims out of a store-issued access token.
// The store signed and verified the token when it issued it; here only the
// claims and the expiry are of interest.
func ParseSessionToken(accessToken string) (Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return nil, nil
	})

	if token == nil {
		return Session{}, err
	}

	parsed, ok := token.Claims.(*sessionClaims)
	if !ok {
		return Session{}, errors.New("could not parse access token claims")
	}

	session := Session{
		AccessToken: accessToken,
		UserID:      parsed.Subject,
		Email:       parsed.Email,
	}

	if parsed.ExpiresAt != nil {
		session.ExpiresAt = parsed.ExpiresAt.Time
	}

	if session.Expired() {
		return Session{}, ErrNoSession
	}

	return session, nil
}

// SignIn exchanges credentials for a session at the store's auth endpoint.
// The upstream error message is passed through verbatim.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var response tokenResponse
	err := c.doJSON(ctx, http.MethodPost, c.endpoint("/auth/token"), payload, &response)
	if err != nil {
		return Session{}, err
	}

	session, err := ParseSessionToken(response.AccessToken)
	if err != nil {
		return Session{}, err
	}

	c.sessions.set(&session)

	return session, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/sign-out"), http.NoBody)
	if err != nil {
		return err
	}

	c.authorize(request, accessToken)

	response, err := c.http.Do(request)
	if err == nil {
		response.Body.Close()
	}

	c.sessions.set(nil)

	return err
}

// CurrentSession returns the session from the most recent sign-in, or
// ErrNoSession when there is none or it expired.
func (c *Client) CurrentSession() (Session, error) {
	session := c.sessions.get()
	if session == nil || session.Expired() {
		return Session{}, ErrNoSession
	}

	return *session, nil
}

// SubscribeSessionChanges registers a hook invoked after every sign-in and
// sign-out. The argument is nil on sign-out.
func (c *Client) SubscribeSessionChanges(fn func(*Session)) {
	c.sessions.subscribe(fn)
}
