package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bitbucket.org/jkcars/booking-hub/internal/admin"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

func AdminSignIn(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.SignInParams](c)

		session, err := deps.Store.SignIn(c.Request.Context(), params.Email, params.Password)
		if err != nil {
			web.HandleError(c, http.StatusUnauthorized, "Sign-in failed", err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func AdminSignOut(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if err := deps.Store.SignOut(c.Request.Context(), token); err != nil {
			handleStoreError(c, "Sign-out failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type reservationsView struct {
	Date      schema.Date                 `json:"date"`
	Events    []schema.Event              `json:"events"`
	DayEvents []schema.Event              `json:"dayEvents"`
	BusyDates []schema.Date               `json:"busyDates"`
	Fleet     []admin.VehicleAvailability `json:"fleet"`
	Stats     admin.SummaryStats          `json:"stats"`
}

// AdminReservations assembles the whole back-office view in one response:
// the merged timeline, the selected day's events, calendar occupancy, the
// fleet panel and the headline counters. The three collections are
// refetched on every call; the store stays the single source of truth.
func AdminReservations(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		day := schema.Today()
		if raw := c.Query("date"); raw != "" {
			parsed, err := schema.ParseDate(raw)
			if err != nil {
				web.HandleError(c, http.StatusBadRequest, "Invalid date", err)
				return
			}

			day = parsed
		}

		ctx := c.Request.Context()

		cars, err := deps.Store.ListCarReservations(ctx, store.OrderBy("pickup_date", true))
		if err != nil {
			handleStoreError(c, "Failed to load car reservations", err)
			return
		}

		excursions, err := deps.Store.ListExcursionReservations(ctx, store.OrderBy("date", true))
		if err != nil {
			handleStoreError(c, "Failed to load excursion reservations", err)
			return
		}

		airports, err := deps.Store.ListAirportTransferReservations(ctx, store.OrderBy("date", true))
		if err != nil {
			handleStoreError(c, "Failed to load airport transfer reservations", err)
			return
		}

		events := admin.MergeReservations(cars, excursions, airports)

		c.JSON(http.StatusOK, reservationsView{
			Date:      day,
			Events:    events,
			DayEvents: admin.EventsOn(events, day),
			BusyDates: admin.BusyDates(events),
			Fleet:     admin.FleetAvailabilityOn(day, cars, deps.Catalog.Vehicles()),
			Stats:     admin.Summarize(events, schema.Today()),
		})
	}
}

// findEvent fetches the addressed collection and locates the row, so the
// transition check runs against the store's current status rather than a
// stale client copy.
func findEvent(
	ctx context.Context,
	deps Dependencies,
	collection schema.Collection,
	id string,
) (schema.Event, error) {
	var events []schema.Event

	switch collection {
	case schema.CollectionCar:
		rows, err := deps.Store.ListCarReservations(ctx, store.ListQuery{})
		if err != nil {
			return schema.Event{}, err
		}
		events = admin.MergeReservations(rows, nil, nil)

	case schema.CollectionExcursion:
		rows, err := deps.Store.ListExcursionReservations(ctx, store.ListQuery{})
		if err != nil {
			return schema.Event{}, err
		}
		events = admin.MergeReservations(nil, rows, nil)

	case schema.CollectionAirport:
		rows, err := deps.Store.ListAirportTransferReservations(ctx, store.ListQuery{})
		if err != nil {
			return schema.Event{}, err
		}
		events = admin.MergeReservations(nil, nil, rows)
	}

	for _, event := range events {
		if event.Id == id {
			return event, nil
		}
	}

	return schema.Event{}, store.ErrReservationNotFound
}

func AdminUpdateStatus(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.StatusUpdateParams](c)
		collection := schema.Collection(c.Params.ByName("collection"))

		switch collection {
		case schema.CollectionCar, schema.CollectionExcursion, schema.CollectionAirport:
		default:
			web.HandleError(c, http.StatusBadRequest, "Unknown reservation collection", nil)
			return
		}

		ctx := c.Request.Context()

		event, err := findEvent(ctx, deps, collection, c.Params.ByName("id"))
		if err != nil {
			if errors.Is(err, store.ErrReservationNotFound) {
				web.HandleError(c, http.StatusNotFound, "Failed to find reservation", err)
				return
			}

			handleStoreError(c, "Failed to load reservation", err)
			return
		}

		if err := admin.UpdateStatus(ctx, deps.Store, event, params.Status); err != nil {
			var transitionErr *admin.TransitionError
			if errors.As(err, &transitionErr) {
				web.HandleError(c, http.StatusConflict, "Status transition not allowed", transitionErr)
				return
			}
			if errors.Is(err, store.ErrReservationNotFound) {
				web.HandleError(c, http.StatusNotFound, "Failed to find reservation", err)
				return
			}

			handleStoreError(c, "Failed to update reservation status", err)
			return
		}

		event.Status = params.Status
		c.JSON(http.StatusOK, event)
	}
}
