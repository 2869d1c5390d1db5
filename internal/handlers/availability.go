package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"bitbucket.org/jkcars/booking-hub/internal/availability"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/tools/slowlog"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	defaultFreeDatesHorizon = 30
	maxFreeDatesHorizon     = 180
)

// availabilityCacheKey groups concurrent searches for the same date range
// into one reservation-store round trip.
func availabilityCacheKey(c *gin.Context) string {
	value, ok := c.Get(ParamsKey)
	if !ok {
		return ""
	}

	params, ok := value.(*schema.AvailabilitySearchParams)
	if !ok {
		return ""
	}

	return fmt.Sprintf("availability-search:%s:%s", params.From, params.To)
}

type availabilityResponse struct {
	From     schema.Date      `json:"from"`
	To       schema.Date      `json:"to"`
	Vehicles []schema.Vehicle `json:"vehicles"`
}

func SearchAvailability(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := c.MustGet("logger").(*zerolog.Logger)
		params := boundParams[schema.AvailabilitySearchParams](c)

		if params.To.Before(params.From.Time) {
			web.HandleError(c, http.StatusBadRequest, "Range end must not precede its start", nil)
			return
		}

		slowLog := slowlog.CreateLogger(log)

		slowLog.Start("reservation-store:list-cars")
		reservations, err := deps.Store.ListCarReservations(c.Request.Context(), store.OrderBy("pickup_date", true))
		slowLog.Stop("reservation-store:list-cars")

		if err != nil {
			handleStoreError(c, "Failed to load reservations", err)
			return
		}

		c.JSON(http.StatusOK, availabilityResponse{
			From:     params.From,
			To:       params.To,
			Vehicles: availability.FreeVehiclesForRange(params.From, params.To, reservations, deps.Catalog.Vehicles()),
		})
	}
}

type freeDatesResponse struct {
	VehicleId string        `json:"vehicleId"`
	Horizon   int           `json:"horizon"`
	Dates     []schema.Date `json:"dates"`
}

// VehicleFreeDates lists the upcoming days on which one vehicle is
// unreserved, for the pickup-date picker.
func VehicleFreeDates(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleId := c.Params.ByName("id")

		if _, err := deps.Catalog.VehicleByID(vehicleId); err != nil {
			web.HandleError(c, http.StatusNotFound, "Failed to find vehicle", err)
			return
		}

		horizon := defaultFreeDatesHorizon
		if raw := c.Query("horizon"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				web.HandleError(c, http.StatusBadRequest, "Horizon must be a positive number of days", err)
				return
			}

			horizon = parsed
		}

		if horizon > maxFreeDatesHorizon {
			horizon = maxFreeDatesHorizon
		}

		reservations, err := deps.Store.ListCarReservations(c.Request.Context(), store.OrderBy("pickup_date", true))
		if err != nil {
			handleStoreError(c, "Failed to load reservations", err)
			return
		}

		c.JSON(http.StatusOK, freeDatesResponse{
			VehicleId: vehicleId,
			Horizon:   horizon,
			Dates:     availability.FreeDatesForVehicle(vehicleId, horizon, reservations, schema.Today()),
		})
	}
}
