// Package handlers wires the domain packages onto the router. Each
// handler reads its bound params from the context, delegates to a domain
// package and maps domain errors onto HTTP codes.
package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/booking"
	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"bitbucket.org/jkcars/booking-hub/internal/grouping"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/tools/redisfactory"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Catalog      *catalog.Store
	Store        *store.Client
	RedisFactory *redisfactory.Factory
}

// RegisterRoutes attaches every domain route to a router prepared by
// web.SetupRouter.
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	sessions := booking.NewSessionStore(deps.RedisFactory.SessionsClient())

	router.GET("/fleet", ListFleet(deps))
	router.GET("/fleet/:id", GetVehicle(deps))
	router.GET("/excursions", ListExcursions(deps))
	router.GET("/excursions/:id", GetExcursion(deps))

	quotes := router.Group("/quotes")
	quotes.POST("/car", PrepareParams(schema.CarQuoteParams{}), QuoteCar(deps))
	quotes.POST("/excursion", PrepareParams(schema.ExcursionQuoteParams{}), QuoteExcursion(deps))
	quotes.POST("/airport-transfer", PrepareParams(schema.AirportTransferQuoteParams{}), QuoteAirportTransfer(deps))

	availabilityRoutes := router.Group("/availability")
	availabilityRoutes.POST(
		"/search",
		PrepareParams(schema.AvailabilitySearchParams{}),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   deps.RedisFactory.ResponsesCacheClient(),
			CacheKey:      availabilityCacheKey,
		}),
		SearchAvailability(deps),
	)
	availabilityRoutes.GET("/vehicles/:id/dates", VehicleFreeDates(deps))

	bookings := router.Group("/bookings")
	bookings.POST("", PrepareParams(schema.BookingStartParams{}), StartBooking(deps, sessions))

	oneBooking := bookings.Group("/:id", PrepareSession(sessions))
	oneBooking.GET("", GetBooking())
	oneBooking.POST("/details", PrepareParams(schema.DetailsParams{}), SubmitBookingDetails(sessions))
	oneBooking.POST("/payment", PrepareParams(schema.PaymentParams{}), SelectBookingPayment(sessions))
	oneBooking.POST("/confirm", ConfirmBooking(deps, sessions))
	oneBooking.POST("/back", StepBookingBack(sessions))
	oneBooking.GET("/receipt", GetBookingReceipt())

	adminRoutes := router.Group("/admin")
	adminRoutes.POST("/sign-in", PrepareParams(schema.SignInParams{}), AdminSignIn(deps))
	adminRoutes.POST("/sign-out", RequireSession(deps), AdminSignOut(deps))
	adminRoutes.GET("/reservations", RequireSession(deps), AdminReservations(deps))
	adminRoutes.POST(
		"/reservations/:collection/:id/status",
		RequireSession(deps),
		PrepareParams(schema.StatusUpdateParams{}),
		AdminUpdateStatus(deps),
	)
}

func boundParams[T any](c *gin.Context) *T {
	return c.MustGet(ParamsKey).(*T)
}

func boundSession(c *gin.Context) *booking.Session {
	return c.MustGet(SessionKey).(*booking.Session)
}

// handleStoreError keeps upstream messages intact: a classified store
// failure is a 502 with the verbatim message, anything else a 500.
func handleStoreError(c *gin.Context, message string, err error) {
	var storeErr *schema.StoreError
	if errors.As(err, &storeErr) {
		web.HandleError(c, http.StatusBadGateway, message, storeErr)
		return
	}

	web.HandleError(c, http.StatusInternalServerError, message, err)
}
