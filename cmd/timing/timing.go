// Package timing computes the best day / hour / weekday analysis
package timing

import (
	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/analytics"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the timing command
var Cmd = &cobra.Command{
	Use:   "timing",
	Short: "Find the best sales day, hour and weekday",
	Long: `Bucket orders by calendar day, hour of day and weekday, summing
revenue and counting line items per bucket, and report the strongest
bucket of each kind.`,
	Run: timingFunc,
}

func timingFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)

	criteria, err := common.ParseCriteria(
		root.SharedFlags.From, root.SharedFlags.To,
		root.SharedFlags.Statuses, root.SharedFlags.States,
		root.SharedFlags.Products, root.SharedFlags.Search)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}

	orders, err := common.LoadFiltered(root.SharedFlags.Input, criteria, root.Delimiter(), log)
	if err != nil {
		root.Log.Fatalf("Error loading orders: %v", err)
	}

	timing := analytics.ComputeTiming(orders)

	data, err := report.Generate(timing, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	if err := common.WriteOutput(data, root.SharedFlags.Output, log); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
