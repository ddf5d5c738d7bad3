// Package variations ranks product variations by units sold
package variations

import (
	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/analytics"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the variations command
var Cmd = &cobra.Command{
	Use:   "variations",
	Short: "Rank the best-selling product variations",
	Long: `Group line items by variation name and rank them by units sold,
with revenue, order count and average ticket per variation.`,
	Run: variationsFunc,
}

func variationsFunc(cmd *cobra.Command, args []string) {
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

	ranking := analytics.RankVariations(orders, analytics.DefaultTopVariations)

	data, err := report.Generate(ranking, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	if err := common.WriteOutput(data, root.SharedFlags.Output, log); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
