// Package analyze computes the full sales metrics report
package analyze

import (
	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/analytics"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute sales metrics from an order export",
	Long: `Compute total revenue, order count, average order value and the
per-day, per-state, per-product, per-status and per-month breakdowns
over the (optionally filtered) order records.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
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

	topProducts := analytics.DefaultTopProducts
	if root.Cfg != nil {
		topProducts = root.Cfg.Report.TopProducts
	}
	metrics := analytics.AggregateTop(orders, topProducts)

	data, err := report.Generate(metrics, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	if err := common.WriteOutput(data, root.SharedFlags.Output, log); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
