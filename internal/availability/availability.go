// Package availability derives which vehicles are free from a reservation
// snapshot the caller supplies. All comparisons are calendar-day precise
// and inclusive on both ends.
package availability

import (
	"bitbucket.org/jkcars/booking-hub/internal/schema"
)

// DateRangeOverlaps reports whether target falls inside [start, end]. A nil
// end means a single-day range, as excursion and transfer reservations are.
func DateRangeOverlaps(target, start schema.Date, end *schema.Date) bool {
	last := start
	if end != nil {
		last = *end
	}

	if target.Equal(start.Time) || target.Equal(last.Time) {
		return true
	}

	return target.After(start.Time) && target.Before(last.Time)
}

// ExpandRange lists every calendar day from start to end inclusive,
// ascending. A nil or inverted end yields just the start day.
func ExpandRange(start schema.Date, end *schema.Date) []schema.Date {
	last := start
	if end != nil && end.After(start.Time) {
		last = *end
	}

	days := []schema.Date{}
	for cursor := start; !cursor.After(last.Time); cursor = cursor.AddDays(1) {
		days = append(days, cursor)
	}

	return days
}

// VehicleIsReserved reports whether any reservation for the vehicle touches
// the target day. Cancelled reservations still count as occupying the
// vehicle; the admin calendar relies on cancelled rows staying visible.
func VehicleIsReserved(vehicleID string, target schema.Date, reservations []schema.CarReservationRow) bool {
	for _, reservation := range reservations {
		if reservation.CarId != vehicleID {
			continue
		}

		if DateRangeOverlaps(target, reservation.PickupDate, reservation.ReturnDate) {
			return true
		}
	}

	return false
}

// FreeVehiclesForRange returns the catalog vehicles with no reservation
// touching any day of [start, end]. The whole span is checked, not just its
// boundaries, so a reservation wholly inside the range still excludes the
// vehicle.
func FreeVehiclesForRange(
	start schema.Date,
	end schema.Date,
	reservations []schema.CarReservationRow,
	vehicles []schema.Vehicle,
) []schema.Vehicle {
	days := ExpandRange(start, &end)

	free := []schema.Vehicle{}
	for _, vehicle := range vehicles {
		reserved := false
		for _, day := range days {
			if VehicleIsReserved(vehicle.Id, day, reservations) {
				reserved = true
				break
			}
		}

		if !reserved {
			free = append(free, vehicle)
		}
	}

	return free
}

// FreeDatesForVehicle lists the days within the next horizonDays starting
// at from on which the vehicle is unreserved. Recomputed fresh on every
// call; the snapshot is the only state.
func FreeDatesForVehicle(
	vehicleID string,
	horizonDays int,
	reservations []schema.CarReservationRow,
	from schema.Date,
) []schema.Date {
	free := []schema.Date{}
	for i := 0; i < horizonDays; i++ {
		day := from.AddDays(i)
		if !VehicleIsReserved(vehicleID, day, reservations) {
			free = append(free, day)
		}
	}

	return free
}
