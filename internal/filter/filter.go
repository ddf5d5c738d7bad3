// Package filter applies optional, AND-combined criteria to an order
// collection. Criteria are transient and owned by the caller; an absent
// criterion never excludes a record.
package filter

import (
	"strings"
	"time"

	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/models"
)

// Criteria is an independently applicable set of constraints. The zero
// value matches everything.
type Criteria struct {
	// Start and End bound the order creation date inclusively by day.
	Start *time.Time
	End   *time.Time

	// Statuses and States are exact membership sets.
	Statuses []string
	States   []string

	// Products matches when the product name contains any of the given
	// substrings, case-insensitively.
	Products []string

	// Search is a case-insensitive substring matched against product
	// name, order ID, buyer username and state; any one match passes.
	Search string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Start == nil && c.End == nil &&
		len(c.Statuses) == 0 && len(c.States) == 0 &&
		len(c.Products) == 0 && c.Search == ""
}

// Apply returns the orders satisfying all present criteria. The input
// slice is never mutated and relative order is preserved. A record
// whose creation date failed to parse is excluded whenever a date bound
// is active: date filters fail closed.
func Apply(orders []models.Order, criteria Criteria) []models.Order {
	if criteria.IsZero() {
		return orders
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if matches(order, criteria) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func matches(order models.Order, c Criteria) bool {
	if c.Start != nil || c.End != nil {
		if order.CreatedTime == nil {
			return false
		}
		t := *order.CreatedTime
		if c.Start != nil && t.Before(dateutils.StartOfDay(*c.Start)) {
			return false
		}
		if c.End != nil && t.After(dateutils.EndOfDay(*c.End)) {
			return false
		}
	}

	if len(c.Statuses) > 0 && !containsExact(c.Statuses, order.Status) {
		return false
	}
	if len(c.States) > 0 && !containsExact(c.States, order.State) {
		return false
	}
	if len(c.Products) > 0 && !matchesAnySubstring(order.ProductName, c.Products) {
		return false
	}

	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		haystacks := []string{order.ProductName, order.OrderID, order.BuyerUsername, order.State}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func containsExact(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func matchesAnySubstring(value string, needles []string) bool {
	lower := strings.ToLower(value)
	for _, needle := range needles {
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
