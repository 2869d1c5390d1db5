package store_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/store"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func forgeToken(t *testing.T, subject, email string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"exp":   expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte("test-secret"))
	assert.Nil(t, err)

	return signed
}

func TestParseSessionToken(t *testing.T) {
	t.Run("should read the identity claims", func(t *testing.T) {
		token := forgeToken(t, "user-1", "staff@jkcars.tn", time.Now().Add(time.Hour))

		session, err := store.ParseSessionToken(token)

		assert.Nil(t, err)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "staff@jkcars.tn", session.Email)
		assert.False(t, session.Expired())
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		token := forgeToken(t, "user-1", "staff@jkcars.tn", time.Now().Add(-time.Hour))

		_, err := store.ParseSessionToken(token)
		assert.ErrorIs(t, err, store.ErrNoSession)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := store.ParseSessionToken("not-a-token")
		assert.NotNil(t, err)
	})
}

func TestSignIn(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should exchange credentials and hold the session", func(t *testing.T) {
		token := forgeToken(t, "user-1", "staff@jkcars.tn", time.Now().Add(time.Hour))

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/token", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"access_token":%q}`, token)
		}))
		defer server.Close()

		client := store.NewClient(&log, store.WithBaseURL(server.URL))

		var notified *store.Session
		client.SubscribeSessionChanges(func(session *store.Session) {
			notified = session
		})

		session, err := client.SignIn(context.Background(), "staff@jkcars.tn", "secret")

		assert.Nil(t, err)
		assert.Equal(t, "staff@jkcars.tn", session.Email)
		assert.NotNil(t, notified)

		current, err := client.CurrentSession()
		assert.Nil(t, err)
		assert.Equal(t, session.AccessToken, current.AccessToken)
	})

	t.Run("should pass a refusal through and hold no session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := store.NewClient(&log, store.WithBaseURL(server.URL))

		_, err := client.SignIn(context.Background(), "staff@jkcars.tn", "wrong")
		assert.NotNil(t, err)

		_, err = client.CurrentSession()
		assert.ErrorIs(t, err, store.ErrNoSession)
	})
}

func TestSignOut(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should clear the held session", func(t *testing.T) {
		token := forgeToken(t, "user-1", "staff@jkcars.tn", time.Now().Add(time.Hour))

		var signOutAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/sign-out" {
				signOutAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"access_token":%q}`, token)
		}))
		defer server.Close()

		client := store.NewClient(&log, store.WithBaseURL(server.URL))

		session, err := client.SignIn(context.Background(), "staff@jkcars.tn", "secret")
		assert.Nil(t, err)

		assert.Nil(t, client.SignOut(context.Background(), session.AccessToken))
		assert.Equal(t, "Bearer "+session.AccessToken, signOutAuth)

		_, err = client.CurrentSession()
		assert.ErrorIs(t, err, store.ErrNoSession)
	})
}
