package analytics

import (
	"fmt"
	"sort"
	"time"

	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
)

// weekdayNames are the Portuguese weekday labels, Sunday first, indexed
// by time.Weekday.
var weekdayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// ComputeTiming derives the best day / best hour / best weekday
// analysis. Only records with a parsed creation date participate. Hour
// and weekday series always carry all 24 hours and all 7 weekdays, with
// zeros for empty buckets; the day series only carries days with data.
// "Best" is the bucket with maximum revenue; equal revenue resolves to
// the earlier bucket key.
func ComputeTiming(orders []models.Order) models.TimingReport {
	report := models.TimingReport{
		ByHour:    make([]models.HourBucket, 24),
		ByWeekday: make([]models.WeekdayBucket, 7),
	}
	for h := range report.ByHour {
		report.ByHour[h] = models.HourBucket{
			Hour:    h,
			Label:   fmt.Sprintf("%02d:00", h),
			Revenue: decimal.Zero,
		}
	}
	for w := range report.ByWeekday {
		report.ByWeekday[w] = models.WeekdayBucket{
			Weekday: weekdayNames[w],
			Revenue: decimal.Zero,
		}
	}

	days := make(map[string]*models.DayBucket)
	for _, order := range orders {
		if order.CreatedTime == nil {
			continue
		}
		t := *order.CreatedTime
		value := order.TotalValue

		key := dateutils.DayKey(t)
		bucket, exists := days[key]
		if !exists {
			bucket = &models.DayBucket{Day: key, Revenue: decimal.Zero}
			days[key] = bucket
		}
		bucket.Orders++
		bucket.Revenue = bucket.Revenue.Add(value)

		hour := t.Hour()
		report.ByHour[hour].Orders++
		report.ByHour[hour].Revenue = report.ByHour[hour].Revenue.Add(value)

		weekday := int(t.Weekday())
		report.ByWeekday[weekday].Orders++
		report.ByWeekday[weekday].Revenue = report.ByWeekday[weekday].Revenue.Add(value)
	}

	dayBuckets := make([]models.DayBucket, 0, len(days))
	for _, bucket := range days {
		if bucket.Orders > 0 {
			bucket.AverageTicket = bucket.Revenue.Div(decimal.NewFromInt(int64(bucket.Orders)))
		}
		dayBuckets = append(dayBuckets, *bucket)
	}
	sort.Slice(dayBuckets, func(i, j int) bool {
		cmp := dayBuckets[i].Revenue.Cmp(dayBuckets[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return dayBuckets[i].Day < dayBuckets[j].Day
	})

	if len(dayBuckets) > 0 {
		best := dayBuckets[0]
		report.BestDay = &best
	}
	top := dayBuckets
	if len(top) > 5 {
		top = top[:5]
	}
	report.TopDays = top

	report.BestHour = report.ByHour[0]
	for _, bucket := range report.ByHour[1:] {
		if bucket.Revenue.GreaterThan(report.BestHour.Revenue) {
			report.BestHour = bucket
		}
	}

	report.BestWeekday = report.ByWeekday[0]
	for _, bucket := range report.ByWeekday[1:] {
		if bucket.Revenue.GreaterThan(report.BestWeekday.Revenue) {
			report.BestWeekday = bucket
		}
	}

	return report
}

// DateRange reports the earliest and latest parsed creation instants in
// the collection. ok is false when no record has a parsed date.
func DateRange(orders []models.Order) (min, max time.Time, ok bool) {
	for _, order := range orders {
		if order.CreatedTime == nil {
			continue
		}
		t := *order.CreatedTime
		if !ok {
			min, max, ok = t, t, true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return min, max, ok
}
