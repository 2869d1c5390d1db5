package handlers

import (
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/pricing"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

// The quote endpoints recompute from the catalog on every call. A client
// never submits a price, only the primitives that produce one.

func QuoteCar(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.CarQuoteParams](c)

		vehicle, err := deps.Catalog.VehicleByID(params.CarId)
		if err != nil {
			web.HandleError(c, http.StatusNotFound, "Failed to find vehicle", err)
			return
		}

		c.JSON(http.StatusOK, pricing.CarRental(vehicle, params.PickupDate, params.ReturnDate, params.AddOns))
	}
}

func QuoteExcursion(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.ExcursionQuoteParams](c)

		if !params.CarType.Valid() {
			web.HandleError(c, http.StatusBadRequest, "Unknown vehicle class", nil)
			return
		}

		excursion, err := deps.Catalog.ExcursionByID(params.ExcursionId)
		if err != nil {
			web.HandleError(c, http.StatusNotFound, "Failed to find excursion", err)
			return
		}

		c.JSON(http.StatusOK, pricing.Excursion(excursion, params.Persons, params.CarType, params.AddOns))
	}
}

func QuoteAirportTransfer(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.AirportTransferQuoteParams](c)

		if !params.CarPreference.Valid() {
			web.HandleError(c, http.StatusBadRequest, "Unknown vehicle class", nil)
			return
		}

		quote, err := pricing.AirportTransfer(params.Airport, params.CarPreference)
		if err != nil {
			web.HandleError(c, http.StatusBadRequest, "Failed to price transfer", err)
			return
		}

		c.JSON(http.StatusOK, quote)
	}
}
