package schema

import "errors"

type ServiceType string

const (
	ServiceCarRental       ServiceType = "car"
	ServiceExcursion       ServiceType = "excursion"
	ServiceAirportTransfer ServiceType = "airport-transfer"
)

var ErrInvalidConfiguration = errors.New("service configuration must carry exactly one populated variant")

type CarRentalConfig struct {
	CarId          string   `json:"carId"`
	PickupDate     Date     `json:"pickupDate"`
	ReturnDate     *Date    `json:"returnDate,omitempty"`
	PickupLocation string   `json:"pickupLocation"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	AddOns         []string `json:"addOns"`
}

type ExcursionConfig struct {
	ExcursionId string       `json:"excursionId"`
	Date        Date         `json:"date"`
	Persons     int          `json:"persons"`
	CarType     VehicleClass `json:"carType"`
	AddOns      []string     `json:"addOns"`
}

type AirportTransferConfig struct {
	Airport        string       `json:"airport"`
	PickupLocation string       `json:"pickupLocation"`
	Date           Date         `json:"date"`
	Time           string       `json:"time"`
	Passengers     int          `json:"passengers"`
	CarPreference  VehicleClass `json:"carPreference"`
}

// ServiceConfiguration is a tagged union over the three bookable services.
// Exactly one variant pointer is set and it always matches Type; use the
// constructors and check Validate before dispatching on Type.
type ServiceConfiguration struct {
	Type            ServiceType            `json:"type"`
	Car             *CarRentalConfig       `json:"car,omitempty"`
	Excursion       *ExcursionConfig       `json:"excursion,omitempty"`
	AirportTransfer *AirportTransferConfig `json:"airportTransfer,omitempty"`
}

func NewCarRentalConfiguration(cfg CarRentalConfig) ServiceConfiguration {
	return ServiceConfiguration{Type: ServiceCarRental, Car: &cfg}
}

func NewExcursionConfiguration(cfg ExcursionConfig) ServiceConfiguration {
	return ServiceConfiguration{Type: ServiceExcursion, Excursion: &cfg}
}

func NewAirportTransferConfiguration(cfg AirportTransferConfig) ServiceConfiguration {
	return ServiceConfiguration{Type: ServiceAirportTransfer, AirportTransfer: &cfg}
}

func (c ServiceConfiguration) Validate() error {
	populated := 0
	if c.Car != nil {
		populated++
	}
	if c.Excursion != nil {
		populated++
	}
	if c.AirportTransfer != nil {
		populated++
	}

	if populated != 1 {
		return ErrInvalidConfiguration
	}

	switch c.Type {
	case ServiceCarRental:
		if c.Car == nil {
			return ErrInvalidConfiguration
		}
	case ServiceExcursion:
		if c.Excursion == nil {
			return ErrInvalidConfiguration
		}
	case ServiceAirportTransfer:
		if c.AirportTransfer == nil {
			return ErrInvalidConfiguration
		}
	default:
		return ErrInvalidConfiguration
	}

	return nil
}

// Customer is the identity captured during the details step.
type Customer struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DriverLicense string `json:"driverLicense,omitempty"`
}
