package admin

import (
	"context"
	"fmt"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/store"
)

// One transition table instead of per-screen checks. Completed and
// cancelled are terminal here even though the store itself would accept
// any write.
var allowedTransitions = map[schema.ReservationStatus][]schema.ReservationStatus{
	schema.StatusPending:   {schema.StatusConfirmed, schema.StatusCancelled},
	schema.StatusConfirmed: {schema.StatusCompleted, schema.StatusCancelled},
	schema.StatusCompleted: {},
	schema.StatusCancelled: {},
}

type TransitionError struct {
	From schema.ReservationStatus
	To   schema.ReservationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move a %s reservation to %s", e.From, e.To)
}

func CanTransition(from, to schema.ReservationStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

func collectionForEvent(eventType schema.EventType) schema.Collection {
	switch eventType {
	case schema.EventExcursion:
		return schema.CollectionExcursion
	case schema.EventAirport:
		return schema.CollectionAirport
	default:
		return schema.CollectionCar
	}
}

// UpdateStatus authorizes the transition and delegates to the store. The
// caller must refetch the aggregate view afterwards; nothing is mutated
// locally.
func UpdateStatus(
	ctx context.Context,
	storeClient *store.Client,
	event schema.Event,
	newStatus schema.ReservationStatus,
) error {
	if !newStatus.Valid() {
		return &TransitionError{From: event.Status, To: newStatus}
	}

	if !CanTransition(event.Status, newStatus) {
		return &TransitionError{From: event.Status, To: newStatus}
	}

	return storeClient.UpdateReservationStatus(ctx, collectionForEvent(event.Type), event.Id, newStatus)
}
