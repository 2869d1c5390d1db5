package catalog_test

import (
	"testing"

	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	store, err := catalog.Load("../../data")
	assert.Nil(t, err)

	t.Run("should expose the whole fleet", func(t *testing.T) {
		assert.NotEmpty(t, store.Vehicles())
	})

	t.Run("should find a vehicle by id", func(t *testing.T) {
		vehicle, err := store.VehicleByID("clio-5")

		assert.Nil(t, err)
		assert.Equal(t, "clio-5", vehicle.Id)
	})

	t.Run("should report a missing vehicle", func(t *testing.T) {
		_, err := store.VehicleByID("batmobile")
		assert.ErrorIs(t, err, catalog.ErrVehicleNotFound)
	})

	t.Run("should find an excursion by id", func(t *testing.T) {
		excursion, err := store.ExcursionByID("sidi-bou-said")

		assert.Nil(t, err)
		assert.Equal(t, "sidi-bou-said", excursion.Id)
	})

	t.Run("should report a missing excursion", func(t *testing.T) {
		_, err := store.ExcursionByID("atlantis")
		assert.ErrorIs(t, err, catalog.ErrExcursionNotFound)
	})

	t.Run("should fail on a missing catalog directory", func(t *testing.T) {
		_, err := catalog.Load("./no-such-dir")
		assert.NotNil(t, err)
	})
}
