// Package pricing computes totals for the three bookable services. Every
// function here is pure: same inputs, same integer total, no I/O, so
// callers may recompute on every request without caching.
package pricing

import (
	"errors"
	"math"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
)

var ErrUnknownAirport = errors.New("unknown airport code")

// Car rental add-ons are billed per rental day.
var carAddOnPrices = map[string]int{
	"gps":       5,
	"babySeat":  8,
	"insurance": 15,
	"driver":    40,
}

// Excursion add-ons are billed once per booking.
var excursionAddOnPrices = map[string]int{
	"guide":          30,
	"lunch":          25,
	"airportDropoff": 40,
}

var classUpgradePrices = map[schema.VehicleClass]int{
	schema.ClassSedan:   0,
	schema.ClassSuv:     20,
	schema.ClassMinivan: 35,
}

var airportBaseFares = map[string]int{
	"tunis-carthage": 80,
	"enfidha":        40,
	"monastir":       30,
}

var transferSurcharges = map[schema.VehicleClass]int{
	schema.ClassSedan:   0,
	schema.ClassSuv:     15,
	schema.ClassMinivan: 25,
}

// RentalDays counts billable calendar days. Both the pickup and the return
// day are billed, so a same-day rental is one day. A return date before the
// pickup date is clamped to one day; the date pickers stop it upstream.
func RentalDays(pickup schema.Date, ret *schema.Date) int {
	if ret == nil {
		return 1
	}

	days := schema.DaysBetween(pickup, *ret) + 1
	if days < 1 {
		return 1
	}

	return days
}

// DailyRate applies the vehicle's discount to its day price, rounding once
// per day-rate. The rounded rate is what gets multiplied by days, matching
// the price shown on the vehicle page.
func DailyRate(vehicle schema.Vehicle) int {
	if vehicle.Discount == nil {
		return vehicle.Price
	}

	factor := 1 - float64(*vehicle.Discount)/100
	return int(math.Round(float64(vehicle.Price) * factor))
}

// CarRental prices a rental: discounted day-rate times days plus per-day
// add-ons. Unknown add-on keys price at zero.
func CarRental(vehicle schema.Vehicle, pickup schema.Date, ret *schema.Date, addOns []string) schema.Quote {
	days := RentalDays(pickup, ret)
	rate := DailyRate(vehicle)

	quote := schema.Quote{
		Type:      schema.ServiceCarRental,
		Days:      days,
		DailyRate: rate,
		BasePrice: rate * days,
		AddOns:    []schema.QuoteLine{},
	}

	quote.Total = quote.BasePrice
	for _, addOn := range addOns {
		amount := carAddOnPrices[addOn] * days
		quote.AddOns = append(quote.AddOns, schema.QuoteLine{Label: addOn, Amount: amount})
		quote.Total += amount
	}

	return quote
}

// Excursion prices a package: a flat group-tier base price (the large-group
// rate applies above three guests when the package defines one), a vehicle
// class upgrade, and flat add-ons. No per-person or per-day multiplier.
func Excursion(pkg schema.ExcursionPackage, persons int, class schema.VehicleClass, addOns []string) schema.Quote {
	base := pkg.Price
	if persons > 3 && pkg.Price3 != nil {
		base = *pkg.Price3
	}

	quote := schema.Quote{
		Type:         schema.ServiceExcursion,
		BasePrice:    base,
		ClassUpgrade: classUpgradePrices[class],
		AddOns:       []schema.QuoteLine{},
	}

	quote.Total = base + quote.ClassUpgrade
	for _, addOn := range addOns {
		amount := excursionAddOnPrices[addOn]
		quote.AddOns = append(quote.AddOns, schema.QuoteLine{Label: addOn, Amount: amount})
		quote.Total += amount
	}

	return quote
}

// AirportTransfer prices a single trip: flat airport fare plus flat class
// surcharge.
func AirportTransfer(airport string, class schema.VehicleClass) (schema.Quote, error) {
	fare, ok := airportBaseFares[airport]
	if !ok {
		return schema.Quote{}, ErrUnknownAirport
	}

	quote := schema.Quote{
		Type:         schema.ServiceAirportTransfer,
		BasePrice:    fare,
		ClassUpgrade: transferSurcharges[class],
		AddOns:       []schema.QuoteLine{},
	}

	quote.Total = fare + quote.ClassUpgrade

	return quote, nil
}
