package analytics

import (
	"sort"

	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
)

// Default ABC curve boundaries: class A while cumulative revenue share
// stays at or below 80%, class B at or below 95%, class C beyond.
var (
	DefaultClassAThreshold = decimal.NewFromFloat(0.80)
	DefaultClassBThreshold = decimal.NewFromFloat(0.95)
)

// ABCOptions overrides the curve boundaries. Zero values fall back to
// the defaults.
type ABCOptions struct {
	ClassAThreshold decimal.Decimal
	ClassBThreshold decimal.Decimal
}

// ClassifyABC computes the ABC curve over the given records: products
// sorted by revenue descending (name ascending on equal revenue, so the
// curve is reproducible), cumulative revenue share, and the resulting
// class. Boundaries are inclusive: a product landing exactly on the 80%
// mark is still class A.
func ClassifyABC(orders []models.Order, opts ABCOptions) []models.ABCEntry {
	thresholdA := opts.ClassAThreshold
	if thresholdA.IsZero() {
		thresholdA = DefaultClassAThreshold
	}
	thresholdB := opts.ClassBThreshold
	if thresholdB.IsZero() {
		thresholdB = DefaultClassBThreshold
	}

	qty := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	for _, order := range orders {
		product := order.ProductName
		if product == "" {
			product = models.LabelUnknownProduct
		}
		qty[product] += order.Quantity
		revenue[product] = revenue[product].Add(order.TotalValue)
	}

	entries := make([]models.ABCEntry, 0, len(revenue))
	total := decimal.Zero
	for product, rev := range revenue {
		entries = append(entries, models.ABCEntry{
			Product:  product,
			Quantity: qty[product],
			Revenue:  rev,
		})
		total = total.Add(rev)
	}

	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].Revenue.Cmp(entries[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].Product < entries[j].Product
	})

	cumulative := decimal.Zero
	for i := range entries {
		cumulative = cumulative.Add(entries[i].Revenue)
		entries[i].Rank = i + 1
		if total.IsPositive() {
			entries[i].Share = entries[i].Revenue.Div(total)
			entries[i].CumulativeShare = cumulative.Div(total)
		}

		switch {
		case entries[i].CumulativeShare.LessThanOrEqual(thresholdA):
			entries[i].Class = models.ABCClassA
		case entries[i].CumulativeShare.LessThanOrEqual(thresholdB):
			entries[i].Class = models.ABCClassB
		default:
			entries[i].Class = models.ABCClassC
		}
	}

	return entries
}

// SummarizeABC counts products per class.
func SummarizeABC(entries []models.ABCEntry) models.ABCSummary {
	var summary models.ABCSummary
	for _, entry := range entries {
		switch entry.Class {
		case models.ABCClassA:
			summary.ClassA++
		case models.ABCClassB:
			summary.ClassB++
		default:
			summary.ClassC++
		}
	}
	return summary
}
