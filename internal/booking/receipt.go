package booking

import (
	"fmt"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
)

// Receipt is the data the document collaborator renders into the customer
// confirmation. Only available once a session is confirmed.
type Receipt struct {
	ReferenceCode string             `json:"referenceCode"`
	Service       schema.ServiceType `json:"service"`
	Title         string             `json:"title"`
	Customer      schema.Customer    `json:"customer"`
	Lines         []schema.QuoteLine `json:"lines"`
	Total         int                `json:"total"`
}

func (s *Session) BuildReceipt() (Receipt, error) {
	if s.State != StateConfirmed {
		return Receipt{}, ErrWrongState
	}

	receipt := Receipt{
		ReferenceCode: s.ReferenceCode,
		Service:       s.Configuration.Type,
		Customer:      s.Customer,
		Total:         s.Quote.Total,
	}

	switch s.Configuration.Type {
	case schema.ServiceCarRental:
		receipt.Title = s.CarName
		receipt.Lines = append(receipt.Lines, schema.QuoteLine{
			Label:  fmt.Sprintf("%d day(s) × %d", s.Quote.Days, s.Quote.DailyRate),
			Amount: s.Quote.BasePrice,
		})
	case schema.ServiceExcursion:
		receipt.Title = s.ExcursionName
		receipt.Lines = append(receipt.Lines, schema.QuoteLine{Label: "excursion", Amount: s.Quote.BasePrice})
	case schema.ServiceAirportTransfer:
		receipt.Title = fmt.Sprintf("%s transfer", s.Configuration.AirportTransfer.Airport)
		receipt.Lines = append(receipt.Lines, schema.QuoteLine{Label: "transfer", Amount: s.Quote.BasePrice})
	}

	if s.Quote.ClassUpgrade > 0 {
		receipt.Lines = append(receipt.Lines, schema.QuoteLine{Label: "vehicle class upgrade", Amount: s.Quote.ClassUpgrade})
	}

	receipt.Lines = append(receipt.Lines, s.Quote.AddOns...)

	return receipt, nil
}
