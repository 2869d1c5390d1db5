// Package booking drives a customer through the checkout steps:
// reviewing the configuration, capturing identity, choosing a payment
// method and confirming against the reservation store. Sessions live in
// redis between requests and hold the whole state machine.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"bitbucket.org/jkcars/booking-hub/internal/pricing"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"github.com/google/uuid"
)

type State string

const (
	StateReviewing        State = "reviewing"
	StateDetailsCapture   State = "details-capture"
	StatePaymentSelection State = "payment-selection"
	StateConfirmed        State = "confirmed"
)

var (
	ErrWrongState        = errors.New("operation not allowed in the current step")
	ErrSessionConfirmed  = errors.New("session is already confirmed")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrInvalidPersons    = errors.New("persons must be at least 1")
	ErrInvalidClass      = errors.New("unknown vehicle class")
	ErrInvalidPassengers = errors.New("passengers must be at least 1")
)

// ValidationError lists the details fields that are missing. Recoverable:
// the session stays in its step and the customer resubmits.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Session is one checkout in progress. Title fields are denormalized at
// start time so the confirmation step does not depend on the catalog.
type Session struct {
	Id            string                      `json:"id"`
	State         State                       `json:"state"`
	Configuration schema.ServiceConfiguration `json:"configuration"`
	Quote         schema.Quote                `json:"quote"`
	CarName       string                      `json:"carName,omitempty"`
	ExcursionName string                      `json:"excursionName,omitempty"`
	Customer      schema.Customer             `json:"customer"`
	PaymentMethod schema.PaymentMethod        `json:"paymentMethod,omitempty"`
	ReferenceCode string                      `json:"referenceCode,omitempty"`
	ReservationId string                      `json:"reservationId,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

// Start validates the configuration against the catalog, prices it, and
// opens a session in the reviewing step. The total always comes from the
// pricing engine here, never from the client.
func Start(configuration schema.ServiceConfiguration, catalogStore *catalog.Store) (*Session, error) {
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		Id:            uuid.New().String(),
		State:         StateReviewing,
		Configuration: configuration,
		CreatedAt:     time.Now().UTC(),
	}

	switch configuration.Type {
	case schema.ServiceCarRental:
		cfg := configuration.Car

		vehicle, err := catalogStore.VehicleByID(cfg.CarId)
		if err != nil {
			return nil, err
		}

		session.CarName = fmt.Sprintf("%s %s", vehicle.Name, vehicle.Model)
		session.Quote = pricing.CarRental(vehicle, cfg.PickupDate, cfg.ReturnDate, cfg.AddOns)

	case schema.ServiceExcursion:
		cfg := configuration.Excursion

		if cfg.Persons < 1 {
			return nil, ErrInvalidPersons
		}
		if !cfg.CarType.Valid() {
			return nil, ErrInvalidClass
		}

		excursion, err := catalogStore.ExcursionByID(cfg.ExcursionId)
		if err != nil {
			return nil, err
		}

		session.ExcursionName = excursion.Title
		session.Quote = pricing.Excursion(excursion, cfg.Persons, cfg.CarType, cfg.AddOns)

	case schema.ServiceAirportTransfer:
		cfg := configuration.AirportTransfer

		if cfg.Passengers < 1 {
			return nil, ErrInvalidPassengers
		}
		if !cfg.CarPreference.Valid() {
			return nil, ErrInvalidClass
		}

		quote, err := pricing.AirportTransfer(cfg.Airport, cfg.CarPreference)
		if err != nil {
			return nil, err
		}

		session.Quote = quote
	}

	return session, nil
}

// BeginDetails moves a reviewed configuration to the identity step.
func (s *Session) BeginDetails() error {
	if s.State != StateReviewing {
		return ErrWrongState
	}

	s.State = StateDetailsCapture
	return nil
}

// SubmitDetails captures the customer identity. Name, email and phone are
// always required; car rentals additionally need a driver license. On a
// validation failure the state does not move.
func (s *Session) SubmitDetails(customer schema.Customer) error {
	if s.State != StateDetailsCapture {
		return ErrWrongState
	}

	missing := []string{}
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(customer.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		missing = append(missing, "phone")
	}
	if s.Configuration.Type == schema.ServiceCarRental && strings.TrimSpace(customer.DriverLicense) == "" {
		missing = append(missing, "driverLicense")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	s.Customer = customer
	s.State = StatePaymentSelection
	return nil
}

// SelectPayment records the payment method while staying in the payment
// step; Confirm performs the persistence call.
func (s *Session) SelectPayment(method schema.PaymentMethod) error {
	if s.State != StatePaymentSelection {
		return ErrWrongState
	}

	if !method.Valid() {
		return ErrInvalidPayment
	}

	s.PaymentMethod = method
	return nil
}

// Back steps one state down. Going back from the first step is a no-op;
// a confirmed session cannot move at all.
func (s *Session) Back() error {
	switch s.State {
	case StateConfirmed:
		return ErrSessionConfirmed
	case StatePaymentSelection:
		s.State = StateDetailsCapture
	case StateDetailsCapture:
		s.State = StateReviewing
	case StateReviewing:
	}

	return nil
}
