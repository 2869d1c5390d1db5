package schema

type EventType string

const (
	EventCar       EventType = "car"
	EventExcursion EventType = "excursion"
	EventAirport   EventType = "airport"
)

// Event is one reservation normalized for the admin timeline, regardless of
// which collection it came from.
type Event struct {
	Id            string            `json:"id"`
	Reference     string            `json:"reference"`
	Type          EventType         `json:"type"`
	Title         string            `json:"title"`
	Subtitle      string            `json:"subtitle"`
	StartDate     Date              `json:"startDate"`
	EndDate       *Date             `json:"endDate,omitempty"`
	Status        ReservationStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Customer      string            `json:"customer"`
	TotalPrice    int               `json:"totalPrice"`
}
