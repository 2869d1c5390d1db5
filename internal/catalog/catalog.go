// Package catalog holds the fleet and excursion reference data. The two
// JSON files are read once at startup; the store is read-only afterwards
// and safe for concurrent use.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bitbucket.org/jkcars/booking-hub/internal/schema"
)

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrExcursionNotFound = errors.New("excursion not found")
)

type Store struct {
	vehicles     []schema.Vehicle
	excursions   []schema.ExcursionPackage
	vehicleIdx   map[string]int
	excursionIdx map[string]int
}

// Load reads cars.json and excursions.json from location. An empty
// location falls back to ./data.
func Load(location string) (*Store, error) {
	if location == "" {
		location = "./data"
	}

	store := &Store{
		vehicleIdx:   make(map[string]int),
		excursionIdx: make(map[string]int),
	}

	if err := readJSON(filepath.Join(location, "cars.json"), &store.vehicles); err != nil {
		return nil, fmt.Errorf("loading fleet catalog: %w", err)
	}

	if err := readJSON(filepath.Join(location, "excursions.json"), &store.excursions); err != nil {
		return nil, fmt.Errorf("loading excursion catalog: %w", err)
	}

	for i, vehicle := range store.vehicles {
		store.vehicleIdx[vehicle.Id] = i
	}

	for i, excursion := range store.excursions {
		store.excursionIdx[excursion.Id] = i
	}

	return store, nil
}

func readJSON(path string, destination any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(content, destination)
}

func (s *Store) Vehicles() []schema.Vehicle {
	return s.vehicles
}

func (s *Store) VehicleByID(id string) (schema.Vehicle, error) {
	i, ok := s.vehicleIdx[id]
	if !ok {
		return schema.Vehicle{}, ErrVehicleNotFound
	}

	return s.vehicles[i], nil
}

func (s *Store) Excursions() []schema.ExcursionPackage {
	return s.excursions
}

func (s *Store) ExcursionByID(id string) (schema.ExcursionPackage, error) {
	i, ok := s.excursionIdx[id]
	if !ok {
		return schema.ExcursionPackage{}, ErrExcursionNotFound
	}

	return s.excursions[i], nil
}
