package analytics

import (
	"testing"
	"time"

	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func timedOrder(created time.Time, total float64) models.Order {
	return models.Order{
		TotalValue:  decimal.NewFromFloat(total),
		CreatedTime: &created,
	}
}

func TestComputeTimingEmptyInput(t *testing.T) {
	report := ComputeTiming(nil)

	assert.Nil(t, report.BestDay)
	assert.Empty(t, report.TopDays)

	if assert.Len(t, report.ByHour, 24) {
		assert.Equal(t, 0, report.ByHour[0].Hour)
		assert.Equal(t, "00:00", report.ByHour[0].Label)
		assert.Equal(t, "23:00", report.ByHour[23].Label)
		for _, bucket := range report.ByHour {
			assert.Equal(t, 0, bucket.Orders)
			assert.True(t, bucket.Revenue.IsZero())
		}
	}

	if assert.Len(t, report.ByWeekday, 7) {
		assert.Equal(t, "Domingo", report.ByWeekday[0].Weekday)
		assert.Equal(t, "Segunda", report.ByWeekday[1].Weekday)
		assert.Equal(t, "Sábado", report.ByWeekday[6].Weekday)
	}
}

func TestComputeTiming(t *testing.T) {
	// 2025-01-05 is a Sunday, 2025-01-06 a Monday.
	sunday := time.Date(2025, 1, 5, 14, 0, 0, 0, time.UTC)
	sundayLater := time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)
	monday := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	orders := []models.Order{
		timedOrder(sunday, 100),
		timedOrder(sundayLater, 60),
		timedOrder(monday, 50),
		{TotalValue: decimal.NewFromInt(999)}, // undated, excluded
	}

	report := ComputeTiming(orders)

	if assert.NotNil(t, report.BestDay) {
		assert.Equal(t, "2025-01-05", report.BestDay.Day)
		assert.Equal(t, 2, report.BestDay.Orders)
		assert.Equal(t, "160", report.BestDay.Revenue.String())
		assert.Equal(t, "80", report.BestDay.AverageTicket.String())
	}

	if assert.Len(t, report.TopDays, 2) {
		assert.Equal(t, "2025-01-05", report.TopDays[0].Day)
		assert.Equal(t, "2025-01-06", report.TopDays[1].Day)
	}

	assert.Equal(t, 14, report.BestHour.Hour)
	assert.Equal(t, "14:00", report.BestHour.Label)
	assert.Equal(t, "160", report.BestHour.Revenue.String())
	assert.Equal(t, 2, report.ByHour[14].Orders)
	assert.Equal(t, 1, report.ByHour[9].Orders)

	assert.Equal(t, "Domingo", report.BestWeekday.Weekday)
	assert.Equal(t, "160", report.BestWeekday.Revenue.String())
	assert.Equal(t, 1, report.ByWeekday[1].Orders)
}

func TestComputeTimingTopDaysTruncated(t *testing.T) {
	orders := make([]models.Order, 0, 8)
	for day := 1; day <= 8; day++ {
		created := time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC)
		orders = append(orders, timedOrder(created, float64(day)))
	}

	report := ComputeTiming(orders)

	if assert.Len(t, report.TopDays, 5) {
		assert.Equal(t, "2025-01-08", report.TopDays[0].Day)
		assert.Equal(t, "2025-01-04", report.TopDays[4].Day)
	}
}

func TestComputeTimingTiesResolveToEarlierBucket(t *testing.T) {
	first := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	second := time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC)

	orders := []models.Order{
		timedOrder(first, 50),
		timedOrder(second, 50),
	}

	report := ComputeTiming(orders)

	assert.Equal(t, 8, report.BestHour.Hour)
}

func TestDateRange(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	middle := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		timedOrder(middle, 1),
		timedOrder(late, 1),
		timedOrder(early, 1),
		{}, // undated
	}

	min, max, ok := DateRange(orders)

	assert.True(t, ok)
	assert.True(t, early.Equal(min))
	assert.True(t, late.Equal(max))
}

func TestDateRangeNoDatedOrders(t *testing.T) {
	_, _, ok := DateRange([]models.Order{{}, {}})

	assert.False(t, ok)
}
