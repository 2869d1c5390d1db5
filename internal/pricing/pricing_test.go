package pricing_test

import (
	"testing"

	"bitbucket.org/jkcars/booking-hub/internal/pricing"
	"bitbucket.org/jkcars/booking-hub/internal/schema"
	"github.com/stretchr/testify/assert"
)

func day(value string) schema.Date {
	date, err := schema.ParseDate(value)
	if err != nil {
		panic(err)
	}

	return date
}

func dayPtr(value string) *schema.Date {
	date := day(value)
	return &date
}

func TestRentalDays(t *testing.T) {
	t.Run("should bill a single day without a return date", func(t *testing.T) {
		assert.Equal(t, 1, pricing.RentalDays(day("2026-05-01"), nil))
	})

	t.Run("should bill a same-day return as one day", func(t *testing.T) {
		assert.Equal(t, 1, pricing.RentalDays(day("2026-05-01"), dayPtr("2026-05-01")))
	})

	t.Run("should bill both boundary days", func(t *testing.T) {
		assert.Equal(t, 3, pricing.RentalDays(day("2026-05-01"), dayPtr("2026-05-03")))
	})

	t.Run("should clamp an inverted range to one day", func(t *testing.T) {
		assert.Equal(t, 1, pricing.RentalDays(day("2026-05-03"), dayPtr("2026-05-01")))
	})
}

func TestDailyRate(t *testing.T) {
	t.Run("should use the list price without a discount", func(t *testing.T) {
		assert.Equal(t, 150, pricing.DailyRate(schema.Vehicle{Price: 150}))
	})

	t.Run("should round the discounted rate to a whole amount", func(t *testing.T) {
		discount := 15
		assert.Equal(t, 128, pricing.DailyRate(schema.Vehicle{Price: 150, Discount: &discount}))
	})

	t.Run("should apply an exact discount without rounding artifacts", func(t *testing.T) {
		discount := 10
		assert.Equal(t, 72, pricing.DailyRate(schema.Vehicle{Price: 80, Discount: &discount}))
	})
}

func TestCarRental(t *testing.T) {
	discount := 15
	vehicle := schema.Vehicle{Id: "tucson-nx4", Price: 150, Discount: &discount}

	t.Run("should multiply the rounded rate by the billable days", func(t *testing.T) {
		quote := pricing.CarRental(vehicle, day("2026-05-01"), dayPtr("2026-05-03"), nil)

		assert.Equal(t, 3, quote.Days)
		assert.Equal(t, 128, quote.DailyRate)
		assert.Equal(t, 384, quote.BasePrice)
		assert.Equal(t, 384, quote.Total)
	})

	t.Run("should round the day rate once, not the grand total", func(t *testing.T) {
		discount := 12
		vehicle := schema.Vehicle{Price: 90, Discount: &discount}

		// 90 * 0.88 = 79.2, rounded to 79 per day before multiplying
		quote := pricing.CarRental(vehicle, day("2026-05-01"), dayPtr("2026-05-05"), nil)
		assert.Equal(t, 79, quote.DailyRate)
		assert.Equal(t, 395, quote.Total)
	})

	t.Run("should bill add-ons per rental day", func(t *testing.T) {
		quote := pricing.CarRental(vehicle, day("2026-05-01"), dayPtr("2026-05-03"), []string{"gps", "insurance"})

		assert.Equal(t, []schema.QuoteLine{
			{Label: "gps", Amount: 15},
			{Label: "insurance", Amount: 45},
		}, quote.AddOns)
		assert.Equal(t, 384+15+45, quote.Total)
	})

	t.Run("should price unknown add-on keys at zero", func(t *testing.T) {
		quote := pricing.CarRental(vehicle, day("2026-05-01"), nil, []string{"helipad"})

		assert.Equal(t, []schema.QuoteLine{{Label: "helipad", Amount: 0}}, quote.AddOns)
		assert.Equal(t, quote.BasePrice, quote.Total)
	})
}

func TestExcursion(t *testing.T) {
	largeGroup := 65
	pkg := schema.ExcursionPackage{Id: "sidi-bou-said", Price: 85, Price3: &largeGroup}

	t.Run("should use the standard price for up to three guests", func(t *testing.T) {
		quote := pricing.Excursion(pkg, 3, schema.ClassSedan, nil)
		assert.Equal(t, 85, quote.Total)
	})

	t.Run("should switch to the large-group rate above three guests", func(t *testing.T) {
		quote := pricing.Excursion(pkg, 4, schema.ClassSedan, nil)
		assert.Equal(t, 65, quote.Total)
	})

	t.Run("should keep the standard price when no large-group rate exists", func(t *testing.T) {
		quote := pricing.Excursion(schema.ExcursionPackage{Price: 110}, 6, schema.ClassSedan, nil)
		assert.Equal(t, 110, quote.Total)
	})

	t.Run("should add the class upgrade and flat add-ons once", func(t *testing.T) {
		quote := pricing.Excursion(pkg, 4, schema.ClassSuv, []string{"lunch"})

		assert.Equal(t, 65, quote.BasePrice)
		assert.Equal(t, 20, quote.ClassUpgrade)
		assert.Equal(t, []schema.QuoteLine{{Label: "lunch", Amount: 25}}, quote.AddOns)
		assert.Equal(t, 110, quote.Total)
	})

	t.Run("should not multiply anything by the guest count", func(t *testing.T) {
		two := pricing.Excursion(pkg, 2, schema.ClassMinivan, []string{"guide"})
		three := pricing.Excursion(pkg, 3, schema.ClassMinivan, []string{"guide"})

		assert.Equal(t, two.Total, three.Total)
	})
}

func TestAirportTransfer(t *testing.T) {
	t.Run("should add the class surcharge to the airport fare", func(t *testing.T) {
		quote, err := pricing.AirportTransfer("enfidha", schema.ClassMinivan)

		assert.Nil(t, err)
		assert.Equal(t, 40, quote.BasePrice)
		assert.Equal(t, 25, quote.ClassUpgrade)
		assert.Equal(t, 65, quote.Total)
	})

	t.Run("should charge no surcharge for a sedan", func(t *testing.T) {
		quote, err := pricing.AirportTransfer("tunis-carthage", schema.ClassSedan)

		assert.Nil(t, err)
		assert.Equal(t, 80, quote.Total)
	})

	t.Run("should reject an unknown airport", func(t *testing.T) {
		_, err := pricing.AirportTransfer("orly", schema.ClassSedan)
		assert.ErrorIs(t, err, pricing.ErrUnknownAirport)
	})
}
