package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"bitbucket.org/jkcars/booking-hub/internal/tools/requesting"
	"github.com/google/go-querystring/query"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ListQuery is encoded onto the collection URL. Order follows the store's
// "<column>.<asc|desc>" convention.
type ListQuery struct {
	Order  string                   `url:"order,omitempty"`
	Status schema.ReservationStatus `url:"status,omitempty"`
	Limit  int                      `url:"limit,omitempty"`
}

func OrderBy(field string, ascending bool) ListQuery {
	direction := "desc"
	if ascending {
		direction = "asc"
	}

	return ListQuery{Order: fmt.Sprintf("%s.%s", field, direction)}
}

func (c *Client) collectionURL(collection schema.Collection, listQuery *ListQuery) string {
	url := c.endpoint("/" + string(collection))

	if listQuery != nil {
		if values, err := query.Values(listQuery); err == nil && len(values) > 0 {
			url += "?" + values.Encode()
		}
	}

	return url
}

// InsertCarReservation persists a new car reservation. An empty status
// defaults to pending before the row leaves this process.
func (c *Client) InsertCarReservation(
	ctx context.Context,
	insert schema.CarReservationInsert,
) (schema.CarReservationRow, error) {
	if insert.Status == "" {
		insert.Status = schema.StatusPending
	}

	var row schema.CarReservationRow
	err := c.doJSON(ctx, http.MethodPost, c.collectionURL(schema.CollectionCar, nil), insert, &row)
	return row, err
}

func (c *Client) InsertExcursionReservation(
	ctx context.Context,
	insert schema.ExcursionReservationInsert,
) (schema.ExcursionReservationRow, error) {
	if insert.Status == "" {
		insert.Status = schema.StatusPending
	}

	var row schema.ExcursionReservationRow
	err := c.doJSON(ctx, http.MethodPost, c.collectionURL(schema.CollectionExcursion, nil), insert, &row)
	return row, err
}

func (c *Client) InsertAirportTransferReservation(
	ctx context.Context,
	insert schema.AirportTransferReservationInsert,
) (schema.AirportTransferReservationRow, error) {
	if insert.Status == "" {
		insert.Status = schema.StatusPending
	}

	var row schema.AirportTransferReservationRow
	err := c.doJSON(ctx, http.MethodPost, c.collectionURL(schema.CollectionAirport, nil), insert, &row)
	return row, err
}

func (c *Client) ListCarReservations(
	ctx context.Context,
	listQuery ListQuery,
) ([]schema.CarReservationRow, error) {
	rows := []schema.CarReservationRow{}
	err := c.doJSON(ctx, http.MethodGet, c.collectionURL(schema.CollectionCar, &listQuery), nil, &rows)
	return rows, err
}

func (c *Client) ListExcursionReservations(
	ctx context.Context,
	listQuery ListQuery,
) ([]schema.ExcursionReservationRow, error) {
	rows := []schema.ExcursionReservationRow{}
	err := c.doJSON(ctx, http.MethodGet, c.collectionURL(schema.CollectionExcursion, &listQuery), nil, &rows)
	return rows, err
}

func (c *Client) ListAirportTransferReservations(
	ctx context.Context,
	listQuery ListQuery,
) ([]schema.AirportTransferReservationRow, error) {
	rows := []schema.AirportTransferReservationRow{}
	err := c.doJSON(ctx, http.MethodGet, c.collectionURL(schema.CollectionAirport, &listQuery), nil, &rows)
	return rows, err
}

// UpdateReservationStatus patches one row's status. Unknown ids surface as
// ErrReservationNotFound; the caller re-fetches the aggregate view rather
// than mutating locally.
func (c *Client) UpdateReservationStatus(
	ctx context.Context,
	collection schema.Collection,
	id string,
	status schema.ReservationStatus,
) error {
	url := fmt.Sprintf("%s/%s", c.collectionURL(collection, nil), id)

	payload := struct {
		Status schema.ReservationStatus `json:"status"`
	}{Status: status}

	encoded, err := jsonBody(payload)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, encoded)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	c.authorize(request, "")

	response, err := c.http.Do(request)
	if err == nil && response.StatusCode == http.StatusNotFound {
		response.Body.Close()
		return ErrReservationNotFound
	}

	classified, storeErr := requesting.ClassifyResponse(response, err)
	if storeErr != nil {
		return storeErr
	}
	classified.Body.Close()

	return nil
}
