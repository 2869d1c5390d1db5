package schema

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type Fuel string

const (
	FuelPetrol   Fuel = "Petrol"
	FuelDiesel   Fuel = "Diesel"
	FuelElectric Fuel = "Electric"
	FuelHybrid   Fuel = "Hybrid"
)

// Vehicle is fleet reference data. Loaded once at startup, never mutated.
// Price is integer dinars per rental day.
type Vehicle struct {
	Id           string       `json:"id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        int          `json:"price"`
	Transmission Transmission `json:"transmission"`
	Fuel         Fuel         `json:"fuel"`
	Seats        int          `json:"seats"`
	Luggage      int          `json:"luggage"`
	Horsepower   int          `json:"horsepower"`
	Consumption  string       `json:"consumption"`
	Features     []string     `json:"features"`
	Available    bool         `json:"available"`

	// Discount is a percentage between 0 and 100, nil when the vehicle
	// has no running promotion.
	Discount *int `json:"discount,omitempty"`
}

type ExcursionDuration string

const (
	DurationHalfDay  ExcursionDuration = "Half Day"
	DurationFullDay  ExcursionDuration = "Full Day"
	DurationMultiDay ExcursionDuration = "Multi-Day"
)

// ExcursionPackage is excursion reference data. Price covers groups of up
// to three guests; Price3, when set, is the flat rate for larger groups.
type ExcursionPackage struct {
	Id          string            `json:"id"`
	Title       string            `json:"title"`
	Destination string            `json:"destination"`
	Duration    ExcursionDuration `json:"duration"`
	Price       int               `json:"price"`
	Price3      *int              `json:"price3,omitempty"`
	Highlights  []string          `json:"highlights"`
	Included    []string          `json:"included"`
}

type VehicleClass string

const (
	ClassSedan   VehicleClass = "sedan"
	ClassSuv     VehicleClass = "suv"
	ClassMinivan VehicleClass = "minivan"
)

func (c VehicleClass) Valid() bool {
	switch c {
	case ClassSedan, ClassSuv, ClassMinivan:
		return true
	}
	return false
}
