// Package analytics computes derived sales metrics from an order
// collection. Every function here is a pure transformation: it reads an
// immutable input slice and produces a fresh result, so callers may
// invoke the engine concurrently over the same records.
package analytics

import (
	"sort"

	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopProducts is the product-ranking length when no limit is
// configured.
const DefaultTopProducts = 10

// Aggregate computes the full metrics object over the given records
// with the default product-ranking length.
func Aggregate(orders []models.Order) models.Metrics {
	return AggregateTop(orders, DefaultTopProducts)
}

// AggregateTop computes the full metrics object over the given records,
// truncating the product ranking to topProducts entries. Sums and
// groupings are independent of input ordering; only the status
// distribution keeps first-occurrence order by contract. Records whose
// creation date never parsed are excluded from the time-bucketed series
// only; they still count toward totals.
func AggregateTop(orders []models.Order, topProducts int) models.Metrics {
	if topProducts < 1 {
		topProducts = DefaultTopProducts
	}
	metrics := models.Metrics{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		ConversionRate:    decimal.Zero,
		TotalOrders:       len(orders),
	}

	dayRevenue := make(map[string]decimal.Decimal)
	monthRevenue := make(map[string]decimal.Decimal)
	stateRevenue := make(map[string]decimal.Decimal)
	productQty := make(map[string]int)
	productRevenue := make(map[string]decimal.Decimal)
	statusCounts := make(map[string]int)
	var statusOrder []string

	for _, order := range orders {
		value := order.TotalValue
		metrics.TotalRevenue = metrics.TotalRevenue.Add(value)

		if order.CreatedTime != nil {
			day := dateutils.DayKey(*order.CreatedTime)
			dayRevenue[day] = dayRevenue[day].Add(value)
			month := dateutils.MonthKey(*order.CreatedTime)
			monthRevenue[month] = monthRevenue[month].Add(value)
		}

		state := order.State
		if state == "" {
			state = models.LabelUnknownState
		}
		stateRevenue[state] = stateRevenue[state].Add(value)

		product := order.ProductName
		if product == "" {
			product = models.LabelUnknownProduct
		}
		productQty[product] += order.Quantity
		productRevenue[product] = productRevenue[product].Add(value)

		status := order.Status
		if status == "" {
			status = models.LabelUnknownStatus
		}
		if _, seen := statusCounts[status]; !seen {
			statusOrder = append(statusOrder, status)
		}
		statusCounts[status]++
	}

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = metrics.TotalRevenue.Div(decimal.NewFromInt(int64(metrics.TotalOrders)))
	}

	metrics.RevenueByDay = sortedDaySeries(dayRevenue)
	metrics.RevenueByMonth = sortedMonthSeries(monthRevenue)
	metrics.RevenueByState = sortedStateRanking(stateRevenue)
	metrics.TopProducts = rankProducts(productQty, productRevenue, topProducts)

	metrics.StatusBreakdown = make([]models.StatusCount, 0, len(statusOrder))
	for _, status := range statusOrder {
		metrics.StatusBreakdown = append(metrics.StatusBreakdown, models.StatusCount{
			Status: status,
			Count:  statusCounts[status],
		})
	}

	return metrics
}

// sortedDaySeries emits day buckets ascending by day key. Day keys are
// fixed-width ISO dates, so lexicographic order is chronological.
func sortedDaySeries(revenue map[string]decimal.Decimal) []models.DayRevenue {
	series := make([]models.DayRevenue, 0, len(revenue))
	for day, total := range revenue {
		series = append(series, models.DayRevenue{Day: day, Revenue: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day < series[j].Day
	})
	return series
}

func sortedMonthSeries(revenue map[string]decimal.Decimal) []models.MonthRevenue {
	series := make([]models.MonthRevenue, 0, len(revenue))
	for month, total := range revenue {
		series = append(series, models.MonthRevenue{Month: month, Revenue: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}

// sortedStateRanking emits states descending by revenue. Equal revenue
// breaks ties by state name ascending so output is reproducible.
func sortedStateRanking(revenue map[string]decimal.Decimal) []models.StateRevenue {
	ranking := make([]models.StateRevenue, 0, len(revenue))
	for state, total := range revenue {
		ranking = append(ranking, models.StateRevenue{State: state, Revenue: total})
	}
	sort.Slice(ranking, func(i, j int) bool {
		cmp := ranking[i].Revenue.Cmp(ranking[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return ranking[i].State < ranking[j].State
	})
	return ranking
}

// rankProducts ranks products descending by revenue, name ascending on
// ties, truncated to the given limit.
func rankProducts(qty map[string]int, revenue map[string]decimal.Decimal, limit int) []models.ProductRevenue {
	ranking := make([]models.ProductRevenue, 0, len(revenue))
	for product, total := range revenue {
		ranking = append(ranking, models.ProductRevenue{
			Product:  product,
			Quantity: qty[product],
			Revenue:  total,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		cmp := ranking[i].Revenue.Cmp(ranking[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return ranking[i].Product < ranking[j].Product
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
