package schema

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentAgency PaymentMethod = "agency"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentAgency
}

// Collection names one of the reservation store's three collections.
type Collection string

const (
	CollectionCar       Collection = "car_reservations"
	CollectionExcursion Collection = "excursion_reservations"
	CollectionAirport   Collection = "airport_reservations"
)

type CarReservationInsert struct {
	ReferenceCode  string            `json:"reference_code"`
	CarId          string            `json:"car_id"`
	CarName        string            `json:"car_name"`
	PickupDate     Date              `json:"pickup_date"`
	ReturnDate     *Date             `json:"return_date,omitempty"`
	PickupLocation string            `json:"pickup_location"`
	ReturnLocation *string           `json:"return_location,omitempty"`
	AddOns         []string          `json:"add_ons"`
	TotalPrice     int               `json:"total_price"`
	CustomerName   string            `json:"customer_name"`
	CustomerEmail  string            `json:"customer_email"`
	CustomerPhone  string            `json:"customer_phone"`
	DriverLicense  *string           `json:"driver_license,omitempty"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	Status         ReservationStatus `json:"status,omitempty"`
}

type CarReservationRow struct {
	CarReservationInsert
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type ExcursionReservationInsert struct {
	ReferenceCode  string            `json:"reference_code"`
	ExcursionId    string            `json:"excursion_id"`
	ExcursionTitle string            `json:"excursion_title"`
	Date           Date              `json:"date"`
	Persons        int               `json:"persons"`
	CarType        VehicleClass      `json:"car_type"`
	AddOns         []string          `json:"add_ons"`
	TotalPrice     int               `json:"total_price"`
	CustomerName   string            `json:"customer_name"`
	CustomerEmail  string            `json:"customer_email"`
	CustomerPhone  string            `json:"customer_phone"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	Status         ReservationStatus `json:"status,omitempty"`
}

type ExcursionReservationRow struct {
	ExcursionReservationInsert
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type AirportTransferReservationInsert struct {
	ReferenceCode  string            `json:"reference_code"`
	Airport        string            `json:"airport"`
	PickupLocation string            `json:"pickup_location"`
	Date           Date              `json:"date"`
	Time           string            `json:"time"`
	Passengers     int               `json:"passengers"`
	CarPreference  VehicleClass      `json:"car_preference"`
	TotalPrice     int               `json:"total_price"`
	CustomerName   string            `json:"customer_name"`
	CustomerEmail  string            `json:"customer_email"`
	CustomerPhone  string            `json:"customer_phone"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	Status         ReservationStatus `json:"status,omitempty"`
}

type AirportTransferReservationRow struct {
	AirportTransferReservationInsert
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
