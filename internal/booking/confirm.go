package booking

import (
	"context"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"github.com/rs/zerolog"
)

// Confirm generates a reference code, persists the reservation and moves
// the session to its terminal state. On a store failure the session stays
// in the payment step untouched so the customer can retry; the upstream
// message travels back verbatim. Nothing deduplicates a retry after a
// successful-but-unacknowledged write.
func Confirm(
	ctx context.Context,
	session *Session,
	storeClient *store.Client,
	logger *zerolog.Logger,
) error {
	if session.State != StatePaymentSelection {
		return ErrWrongState
	}

	if !session.PaymentMethod.Valid() {
		return ErrInvalidPayment
	}

	referenceCode := NewReferenceCode()

	// A card booking is marked confirmed although no payment is actually
	// captured. Inherited rule; logged so it stays visible.
	status := schema.StatusPending
	if session.PaymentMethod == schema.PaymentCard {
		status = schema.StatusConfirmed
		logger.Warn().
			Str("referenceCode", referenceCode).
			Msg("Card booking stored as confirmed without payment capture")
	}

	var (
		savedId        string
		savedReference string
		err            error
	)

	switch session.Configuration.Type {
	case schema.ServiceCarRental:
		cfg := session.Configuration.Car

		var row schema.CarReservationRow
		row, err = storeClient.InsertCarReservation(ctx, schema.CarReservationInsert{
			ReferenceCode:  referenceCode,
			CarId:          cfg.CarId,
			CarName:        session.CarName,
			PickupDate:     cfg.PickupDate,
			ReturnDate:     cfg.ReturnDate,
			PickupLocation: cfg.PickupLocation,
			ReturnLocation: cfg.ReturnLocation,
			AddOns:         cfg.AddOns,
			TotalPrice:     session.Quote.Total,
			CustomerName:   session.Customer.Name,
			CustomerEmail:  session.Customer.Email,
			CustomerPhone:  session.Customer.Phone,
			DriverLicense:  &session.Customer.DriverLicense,
			PaymentMethod:  session.PaymentMethod,
			Status:         status,
		})
		savedId, savedReference = row.Id, row.ReferenceCode

	case schema.ServiceExcursion:
		cfg := session.Configuration.Excursion

		var row schema.ExcursionReservationRow
		row, err = storeClient.InsertExcursionReservation(ctx, schema.ExcursionReservationInsert{
			ReferenceCode:  referenceCode,
			ExcursionId:    cfg.ExcursionId,
			ExcursionTitle: session.ExcursionName,
			Date:           cfg.Date,
			Persons:        cfg.Persons,
			CarType:        cfg.CarType,
			AddOns:         cfg.AddOns,
			TotalPrice:     session.Quote.Total,
			CustomerName:   session.Customer.Name,
			CustomerEmail:  session.Customer.Email,
			CustomerPhone:  session.Customer.Phone,
			PaymentMethod:  session.PaymentMethod,
			Status:         status,
		})
		savedId, savedReference = row.Id, row.ReferenceCode

	case schema.ServiceAirportTransfer:
		cfg := session.Configuration.AirportTransfer

		var row schema.AirportTransferReservationRow
		row, err = storeClient.InsertAirportTransferReservation(ctx, schema.AirportTransferReservationInsert{
			ReferenceCode:  referenceCode,
			Airport:        cfg.Airport,
			PickupLocation: cfg.PickupLocation,
			Date:           cfg.Date,
			Time:           cfg.Time,
			Passengers:     cfg.Passengers,
			CarPreference:  cfg.CarPreference,
			TotalPrice:     session.Quote.Total,
			CustomerName:   session.Customer.Name,
			CustomerEmail:  session.Customer.Email,
			CustomerPhone:  session.Customer.Phone,
			PaymentMethod:  session.PaymentMethod,
			Status:         status,
		})
		savedId, savedReference = row.Id, row.ReferenceCode

	default:
		return schema.ErrInvalidConfiguration
	}

	if err != nil {
		return err
	}

	if savedReference == "" {
		savedReference = referenceCode
	}

	session.ReferenceCode = savedReference
	session.ReservationId = savedId
	session.State = StateConfirmed

	return nil
}
