package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/booking"
	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"bitbucket.org/jkcars/booking-hub/internal/pricing"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// configurationFromParams rebuilds the tagged configuration union from the
// flat hand-off payload the booking pages send.
func configurationFromParams(params schema.BookingStartParams) (schema.ServiceConfiguration, error) {
	missing := []string{}

	switch params.Type {
	case schema.ServiceCarRental:
		if params.CarId == "" {
			missing = append(missing, "carId")
		}
		if params.PickupDate == nil {
			missing = append(missing, "pickupDate")
		}
		if params.PickupLocation == "" {
			missing = append(missing, "pickupLocation")
		}
		if len(missing) > 0 {
			return schema.ServiceConfiguration{}, &booking.ValidationError{Fields: missing}
		}

		return schema.NewCarRentalConfiguration(schema.CarRentalConfig{
			CarId:          params.CarId,
			PickupDate:     *params.PickupDate,
			ReturnDate:     params.ReturnDate,
			PickupLocation: params.PickupLocation,
			ReturnLocation: params.ReturnLocation,
			AddOns:         params.AddOns,
		}), nil

	case schema.ServiceExcursion:
		if params.ExcursionId == "" {
			missing = append(missing, "excursionId")
		}
		if params.Date == nil {
			missing = append(missing, "date")
		}
		if params.Persons < 1 {
			missing = append(missing, "persons")
		}
		if params.CarType == "" {
			missing = append(missing, "carType")
		}
		if len(missing) > 0 {
			return schema.ServiceConfiguration{}, &booking.ValidationError{Fields: missing}
		}

		return schema.NewExcursionConfiguration(schema.ExcursionConfig{
			ExcursionId: params.ExcursionId,
			Date:        *params.Date,
			Persons:     params.Persons,
			CarType:     params.CarType,
			AddOns:      params.AddOns,
		}), nil

	case schema.ServiceAirportTransfer:
		if params.Airport == "" {
			missing = append(missing, "airport")
		}
		if params.PickupLocation == "" {
			missing = append(missing, "pickupLocation")
		}
		if params.Date == nil {
			missing = append(missing, "date")
		}
		if params.Time == "" {
			missing = append(missing, "time")
		}
		if params.Passengers < 1 {
			missing = append(missing, "passengers")
		}
		if params.CarPreference == "" {
			missing = append(missing, "carPreference")
		}
		if len(missing) > 0 {
			return schema.ServiceConfiguration{}, &booking.ValidationError{Fields: missing}
		}

		return schema.NewAirportTransferConfiguration(schema.AirportTransferConfig{
			Airport:        params.Airport,
			PickupLocation: params.PickupLocation,
			Date:           *params.Date,
			Time:           params.Time,
			Passengers:     params.Passengers,
			CarPreference:  params.CarPreference,
		}), nil
	}

	return schema.ServiceConfiguration{}, schema.ErrInvalidConfiguration
}

func StartBooking(deps Dependencies, sessions *booking.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.BookingStartParams](c)

		configuration, err := configurationFromParams(*params)
		if err != nil {
			web.HandleError(c, http.StatusBadRequest, "Invalid booking configuration", err)
			return
		}

		session, err := booking.Start(configuration, deps.Catalog)
		if err != nil {
			if errors.Is(err, catalog.ErrVehicleNotFound) || errors.Is(err, catalog.ErrExcursionNotFound) {
				web.HandleError(c, http.StatusNotFound, "Failed to start booking", err)
				return
			}
			if errors.Is(err, pricing.ErrUnknownAirport) {
				web.HandleError(c, http.StatusBadRequest, "Failed to start booking", err)
				return
			}

			web.HandleError(c, http.StatusBadRequest, "Invalid booking configuration", err)
			return
		}

		if err := sessions.Save(c.Request.Context(), session); err != nil {
			web.HandleError(c, http.StatusInternalServerError, "Failed to save booking session", err)
			return
		}

		c.JSON(http.StatusCreated, session)
	}
}

func GetBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, boundSession(c))
	}
}

// SubmitBookingDetails captures the customer identity. A session still in
// the reviewing step advances first, so one call carries the customer from
// review to payment selection.
func SubmitBookingDetails(sessions *booking.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.DetailsParams](c)
		session := boundSession(c)

		if session.State == booking.StateReviewing {
			if err := session.BeginDetails(); err != nil {
				web.HandleError(c, http.StatusConflict, "Failed to begin details capture", err)
				return
			}
		}

		err := session.SubmitDetails(schema.Customer{
			Name:          params.Name,
			Email:         params.Email,
			Phone:         params.Phone,
			DriverLicense: params.DriverLicense,
		})
		if err != nil {
			var validationErr *booking.ValidationError
			if errors.As(err, &validationErr) {
				web.HandleError(c, http.StatusBadRequest, "Missing customer details", validationErr)
				return
			}

			web.HandleError(c, http.StatusConflict, "Failed to submit details", err)
			return
		}

		if err := sessions.Save(c.Request.Context(), session); err != nil {
			web.HandleError(c, http.StatusInternalServerError, "Failed to save booking session", err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func SelectBookingPayment(sessions *booking.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := boundParams[schema.PaymentParams](c)
		session := boundSession(c)

		if err := session.SelectPayment(params.Method); err != nil {
			code := http.StatusConflict
			if errors.Is(err, booking.ErrInvalidPayment) {
				code = http.StatusBadRequest
			}

			web.HandleError(c, code, "Failed to select payment method", err)
			return
		}

		if err := sessions.Save(c.Request.Context(), session); err != nil {
			web.HandleError(c, http.StatusInternalServerError, "Failed to save booking session", err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func ConfirmBooking(deps Dependencies, sessions *booking.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := c.MustGet("logger").(*zerolog.Logger)
		session := boundSession(c)

		err := booking.Confirm(c.Request.Context(), session, deps.Store, log)
		if err != nil {
			if errors.Is(err, booking.ErrWrongState) {
				web.HandleError(c, http.StatusConflict, "Failed to confirm booking", err)
				return
			}
			if errors.Is(err, booking.ErrInvalidPayment) {
				web.HandleError(c, http.StatusBadRequest, "Failed to confirm booking", err)
				return
			}

			handleStoreError(c, "Failed to store reservation", err)
			return
		}

		// The reservation is already persisted at this point. A failed
		// session write must not fail the request, or the customer retries
		// and books twice.
		if err := sessions.Save(c.Request.Context(), session); err != nil {
			log.Error().Err(err).Str("sessionId", session.Id).Msg("Failed to save confirmed session")
		}

		c.JSON(http.StatusOK, session)
	}
}

func StepBookingBack(sessions *booking.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := boundSession(c)

		if err := session.Back(); err != nil {
			web.HandleError(c, http.StatusConflict, "Failed to step back", err)
			return
		}

		if err := sessions.Save(c.Request.Context(), session); err != nil {
			web.HandleError(c, http.StatusInternalServerError, "Failed to save booking session", err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func GetBookingReceipt() gin.HandlerFunc {
	return func(c *gin.Context) {
		receipt, err := boundSession(c).BuildReceipt()
		if err != nil {
			web.HandleError(c, http.StatusConflict, "Receipt is only available for a confirmed booking", err)
			return
		}

		c.JSON(http.StatusOK, receipt)
	}
}
