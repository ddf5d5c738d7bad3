package models

import "github.com/shopspring/decimal"

// DayRevenue is one entry of the per-day revenue series.
type DayRevenue struct {
	Day     string          `json:"day" yaml:"day"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// StateRevenue is one entry of the per-state revenue ranking.
type StateRevenue struct {
	State   string          `json:"state" yaml:"state"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// ProductRevenue is one entry of the product ranking.
type ProductRevenue struct {
	Product  string          `json:"product" yaml:"product"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Revenue  decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// StatusCount is one entry of the status distribution.
type StatusCount struct {
	Status string `json:"status" yaml:"status"`
	Count  int    `json:"count" yaml:"count"`
}

// MonthRevenue is one entry of the per-month revenue series.
type MonthRevenue struct {
	Month   string          `json:"month" yaml:"month"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// Metrics is the aggregation output consumed by the presentation layer.
// Every aggregation call produces a fresh Metrics from the current
// filtered record set; nothing is cached or updated incrementally.
type Metrics struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue" yaml:"total_revenue"`
	TotalOrders       int             `json:"total_orders" yaml:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value" yaml:"average_order_value"`

	// ConversionRate would need visitor data the export does not carry.
	// The field is kept for shape parity and is always zero.
	ConversionRate decimal.Decimal `json:"conversion_rate" yaml:"conversion_rate"`

	RevenueByDay    []DayRevenue     `json:"revenue_by_day" yaml:"revenue_by_day"`
	RevenueByState  []StateRevenue   `json:"revenue_by_state" yaml:"revenue_by_state"`
	TopProducts     []ProductRevenue `json:"top_products" yaml:"top_products"`
	StatusBreakdown []StatusCount    `json:"status_breakdown" yaml:"status_breakdown"`
	RevenueByMonth  []MonthRevenue   `json:"revenue_by_month" yaml:"revenue_by_month"`
}

// ABC classification categories.
const (
	ABCClassA = "A"
	ABCClassB = "B"
	ABCClassC = "C"
)

// ABCEntry is one product of the ABC curve: products sorted by revenue
// with their cumulative revenue share and resulting class.
type ABCEntry struct {
	Rank            int             `json:"rank" yaml:"rank"`
	Product         string          `json:"product" yaml:"product"`
	Quantity        int             `json:"quantity" yaml:"quantity"`
	Revenue         decimal.Decimal `json:"revenue" yaml:"revenue"`
	Share           decimal.Decimal `json:"share" yaml:"share"`
	CumulativeShare decimal.Decimal `json:"cumulative_share" yaml:"cumulative_share"`
	Class           string          `json:"class" yaml:"class"`
}

// ABCSummary counts products per ABC class.
type ABCSummary struct {
	ClassA int `json:"class_a" yaml:"class_a"`
	ClassB int `json:"class_b" yaml:"class_b"`
	ClassC int `json:"class_c" yaml:"class_c"`
}

// VariationStat is one entry of the variation ranking: line items
// grouped by variation name with sold quantity, revenue, line-item
// count and average ticket.
type VariationStat struct {
	Rank          int             `json:"rank" yaml:"rank"`
	Variation     string          `json:"variation" yaml:"variation"`
	Quantity      int             `json:"quantity" yaml:"quantity"`
	Orders        int             `json:"orders" yaml:"orders"`
	Revenue       decimal.Decimal `json:"revenue" yaml:"revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket" yaml:"average_ticket"`
}

// DayBucket aggregates line items that share a calendar day.
type DayBucket struct {
	Day           string          `json:"day" yaml:"day"`
	Orders        int             `json:"orders" yaml:"orders"`
	Revenue       decimal.Decimal `json:"revenue" yaml:"revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket" yaml:"average_ticket"`
}

// HourBucket aggregates line items that share an hour of day (0-23).
type HourBucket struct {
	Hour    int             `json:"hour" yaml:"hour"`
	Label   string          `json:"label" yaml:"label"`
	Orders  int             `json:"orders" yaml:"orders"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// WeekdayBucket aggregates line items that share a weekday. Weekday
// names are Portuguese, Sunday first.
type WeekdayBucket struct {
	Weekday string          `json:"weekday" yaml:"weekday"`
	Orders  int             `json:"orders" yaml:"orders"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
}

// TimingReport carries the best day / best hour / best weekday analysis.
// Hour and weekday buckets always contain all 24 hours and all 7
// weekdays even when a bucket has no records; day buckets only contain
// days that actually have data.
type TimingReport struct {
	BestDay     *DayBucket      `json:"best_day,omitempty" yaml:"best_day,omitempty"`
	TopDays     []DayBucket     `json:"top_days" yaml:"top_days"`
	BestHour    HourBucket      `json:"best_hour" yaml:"best_hour"`
	ByHour      []HourBucket    `json:"by_hour" yaml:"by_hour"`
	BestWeekday WeekdayBucket   `json:"best_weekday" yaml:"best_weekday"`
	ByWeekday   []WeekdayBucket `json:"by_weekday" yaml:"by_weekday"`
}
