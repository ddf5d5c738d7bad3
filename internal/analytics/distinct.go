package analytics

import (
	"sort"

	"fbarros/shopee-insights/internal/models"
)

// DistinctStatuses returns the distinct status labels, sorted.
func DistinctStatuses(orders []models.Order) []string {
	return distinct(orders, func(o models.Order) string { return o.Status })
}

// DistinctStates returns the distinct UF codes, sorted.
func DistinctStates(orders []models.Order) []string {
	return distinct(orders, func(o models.Order) string { return o.State })
}

// DistinctProducts returns the distinct product names, sorted.
func DistinctProducts(orders []models.Order) []string {
	return distinct(orders, func(o models.Order) string { return o.ProductName })
}

func distinct(orders []models.Order, key func(models.Order) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, order := range orders {
		v := key(order)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
