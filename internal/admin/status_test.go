package admin_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/jkcars/booking-hub/internal/admin"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    schema.ReservationStatus
		to      schema.ReservationStatus
		allowed bool
	}{
		{schema.StatusPending, schema.StatusConfirmed, true},
		{schema.StatusPending, schema.StatusCancelled, true},
		{schema.StatusPending, schema.StatusCompleted, false},
		{schema.StatusConfirmed, schema.StatusCompleted, true},
		{schema.StatusConfirmed, schema.StatusCancelled, true},
		{schema.StatusConfirmed, schema.StatusPending, false},
		{schema.StatusCompleted, schema.StatusCancelled, false},
		{schema.StatusCancelled, schema.StatusConfirmed, false},
		{schema.StatusCancelled, schema.StatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, admin.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestUpdateStatus(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should patch the right collection for an allowed transition", func(t *testing.T) {
		var method, path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := store.NewClient(&log, store.WithBaseURL(server.URL))

		event := schema.Event{Id: "air-1", Type: schema.EventAirport, Status: schema.StatusPending}
		err := admin.UpdateStatus(context.Background(), client, event, schema.StatusConfirmed)

		assert.Nil(t, err)
		assert.Equal(t, http.MethodPatch, method)
		assert.Equal(t, "/airport_reservations/air-1", path)
	})

	t.Run("should refuse leaving a terminal status without calling the store", func(t *testing.T) {
		event := schema.Event{Id: "car-1", Type: schema.EventCar, Status: schema.StatusCompleted}

		err := admin.UpdateStatus(context.Background(), nil, event, schema.StatusCancelled)

		var transitionErr *admin.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, schema.StatusCompleted, transitionErr.From)
		assert.Equal(t, schema.StatusCancelled, transitionErr.To)
	})

	t.Run("should refuse an unknown target status", func(t *testing.T) {
		event := schema.Event{Id: "car-1", Type: schema.EventCar, Status: schema.StatusPending}

		err := admin.UpdateStatus(context.Background(), nil, event, "teleported")

		var transitionErr *admin.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}
