package analytics

import (
	"sort"

	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopVariations is the variation-ranking length when no limit is
// given.
const DefaultTopVariations = 10

// RankVariations groups line items by variation name and ranks them by
// units sold descending (variation name ascending on equal quantity, so
// output is reproducible), truncated to limit entries. Line items
// without a variation share a fallback label. AverageTicket is revenue
// over line-item count.
func RankVariations(orders []models.Order, limit int) []models.VariationStat {
	if limit < 1 {
		limit = DefaultTopVariations
	}

	type accum struct {
		quantity int
		orders   int
		revenue  decimal.Decimal
	}
	stats := make(map[string]*accum)
	for _, order := range orders {
		variation := order.VariationName
		if variation == "" {
			variation = models.LabelNoVariation
		}
		acc, exists := stats[variation]
		if !exists {
			acc = &accum{revenue: decimal.Zero}
			stats[variation] = acc
		}
		acc.quantity += order.Quantity
		acc.orders++
		acc.revenue = acc.revenue.Add(order.TotalValue)
	}

	ranking := make([]models.VariationStat, 0, len(stats))
	for variation, acc := range stats {
		entry := models.VariationStat{
			Variation: variation,
			Quantity:  acc.quantity,
			Orders:    acc.orders,
			Revenue:   acc.revenue,
		}
		if acc.orders > 0 {
			entry.AverageTicket = acc.revenue.Div(decimal.NewFromInt(int64(acc.orders)))
		}
		ranking = append(ranking, entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].Variation < ranking[j].Variation
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	for i := range ranking {
		ranking[i].Rank = i + 1
	}
	return ranking
}
