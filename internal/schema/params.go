package schema

// Request payloads bound by the PrepareParams middleware. The field names
// follow the query-string contract the booking pages use.

type CarQuoteParams struct {
	CarId      string   `json:"carId" binding:"required"`
	PickupDate Date     `json:"pickupDate" binding:"required"`
	ReturnDate *Date    `json:"returnDate,omitempty"`
	AddOns     []string `json:"addOns"`
}

type ExcursionQuoteParams struct {
	ExcursionId string       `json:"excursionId" binding:"required"`
	Persons     int          `json:"persons" binding:"required,min=1"`
	CarType     VehicleClass `json:"carType" binding:"required"`
	AddOns      []string     `json:"addOns"`
}

type AirportTransferQuoteParams struct {
	Airport       string       `json:"airport" binding:"required"`
	CarPreference VehicleClass `json:"carPreference" binding:"required"`
}

type AvailabilitySearchParams struct {
	From Date `json:"from" binding:"required"`
	To   Date `json:"to" binding:"required"`
}

// BookingStartParams carries the hand-off from a configuration page. The
// server recomputes the price from these primitives; a client-supplied
// total is never trusted.
type BookingStartParams struct {
	Type ServiceType `json:"type" binding:"required"`

	// car
	CarId          string  `json:"carId,omitempty"`
	PickupDate     *Date   `json:"pickupDate,omitempty"`
	ReturnDate     *Date   `json:"returnDate,omitempty"`
	PickupLocation string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string `json:"returnLocation,omitempty"`

	// excursion
	ExcursionId string       `json:"excursionId,omitempty"`
	Persons     int          `json:"persons,omitempty"`
	CarType     VehicleClass `json:"carType,omitempty"`

	// airport transfer
	Airport       string       `json:"airport,omitempty"`
	Time          string       `json:"time,omitempty"`
	Passengers    int          `json:"passengers,omitempty"`
	CarPreference VehicleClass `json:"carPreference,omitempty"`

	// shared
	Date   *Date    `json:"date,omitempty"`
	AddOns []string `json:"addOns"`
}

type DetailsParams struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DriverLicense string `json:"driverLicense,omitempty"`
}

type PaymentParams struct {
	Method PaymentMethod `json:"method" binding:"required"`
}

type StatusUpdateParams struct {
	Status ReservationStatus `json:"status" binding:"required"`
}

type SignInParams struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
