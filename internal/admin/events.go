// Package admin builds the staff back-office view: the three reservation
// collections merged into one timeline, calendar occupancy, fleet
// availability flags and the status transition policy.
package admin

import (
	"fmt"
	"sort"
	"strings"

	"bitbucket.org/jkcars/booking-hub/internal/availability"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/tools/converting"
)

// MergeReservations normalizes the three collections into one event list
// sorted ascending by start date. Pure; the caller re-runs it after every
// refetch.
func MergeReservations(
	cars []schema.CarReservationRow,
	excursions []schema.ExcursionReservationRow,
	airports []schema.AirportTransferReservationRow,
) []schema.Event {
	events := make([]schema.Event, 0, len(cars)+len(excursions)+len(airports))

	for _, row := range cars {
		returnLocation := converting.Unwrap(row.ReturnLocation)
		if returnLocation == "" {
			returnLocation = row.PickupLocation
		}

		events = append(events, schema.Event{
			Id:            row.Id,
			Reference:     row.ReferenceCode,
			Type:          schema.EventCar,
			Title:         row.CarName,
			Subtitle:      fmt.Sprintf("%s → %s", row.PickupLocation, returnLocation),
			StartDate:     row.PickupDate,
			EndDate:       row.ReturnDate,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Customer:      row.CustomerName,
			TotalPrice:    row.TotalPrice,
		})
	}

	for _, row := range excursions {
		date := row.Date
		events = append(events, schema.Event{
			Id:            row.Id,
			Reference:     row.ReferenceCode,
			Type:          schema.EventExcursion,
			Title:         row.ExcursionTitle,
			Subtitle:      fmt.Sprintf("%d guests • %s", row.Persons, row.CarType),
			StartDate:     date,
			EndDate:       &date,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Customer:      row.CustomerName,
			TotalPrice:    row.TotalPrice,
		})
	}

	for _, row := range airports {
		date := row.Date
		events = append(events, schema.Event{
			Id:            row.Id,
			Reference:     row.ReferenceCode,
			Type:          schema.EventAirport,
			Title:         fmt.Sprintf("%s Transfer", strings.ToUpper(row.Airport)),
			Subtitle:      fmt.Sprintf("%s • %s", row.PickupLocation, row.Time),
			StartDate:     date,
			EndDate:       &date,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Customer:      row.CustomerName,
			TotalPrice:    row.TotalPrice,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate.Time)
	})

	return events
}

// EventsOn filters the timeline down to the events touching one day, with
// the same inclusive overlap rule the availability resolver uses.
func EventsOn(events []schema.Event, day schema.Date) []schema.Event {
	matching := []schema.Event{}
	for _, event := range events {
		if availability.DateRangeOverlaps(day, event.StartDate, event.EndDate) {
			matching = append(matching, event)
		}
	}

	return matching
}

// BusyDates collects every calendar day touched by at least one event,
// ascending, for calendar highlighting.
func BusyDates(events []schema.Event) []schema.Date {
	seen := map[string]schema.Date{}
	for _, event := range events {
		for _, day := range availability.ExpandRange(event.StartDate, event.EndDate) {
			seen[day.String()] = day
		}
	}

	days := make([]schema.Date, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j].Time)
	})

	return days
}

// VehicleAvailability pairs a fleet vehicle with its reserved flag for one
// day, for the admin fleet panel.
type VehicleAvailability struct {
	Vehicle  schema.Vehicle `json:"vehicle"`
	Reserved bool           `json:"reserved"`
}

func FleetAvailabilityOn(
	day schema.Date,
	cars []schema.CarReservationRow,
	vehicles []schema.Vehicle,
) []VehicleAvailability {
	flags := make([]VehicleAvailability, 0, len(vehicles))
	for _, vehicle := range vehicles {
		flags = append(flags, VehicleAvailability{
			Vehicle:  vehicle,
			Reserved: availability.VehicleIsReserved(vehicle.Id, day, cars),
		})
	}

	return flags
}

// SummaryStats are the dashboard headline counters.
type SummaryStats struct {
	Pending  int `json:"pending"`
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
}

func Summarize(events []schema.Event, today schema.Date) SummaryStats {
	stats := SummaryStats{}
	yesterday := today.AddDays(-1)

	for _, event := range events {
		if event.Status == schema.StatusPending {
			stats.Pending++
		}

		if availability.DateRangeOverlaps(today, event.StartDate, event.EndDate) {
			stats.Today++
		}

		if event.StartDate.After(yesterday.Time) {
			stats.Upcoming++
		}
	}

	return stats
}
