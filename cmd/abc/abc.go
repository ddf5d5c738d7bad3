// Package abc computes the ABC product classification
package abc

import (
	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/analytics"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/models"
	"fbarros/shopee-insights/internal/report"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the abc command
var Cmd = &cobra.Command{
	Use:   "abc",
	Short: "Classify products into ABC revenue tiers",
	Long: `Rank products by revenue and classify them into tiers: A while the
cumulative revenue share stays within the configured A threshold, B
within the B threshold, C beyond.`,
	Run: abcFunc,
}

type abcReport struct {
	Summary models.ABCSummary `json:"summary" yaml:"summary"`
	Entries []models.ABCEntry `json:"entries" yaml:"entries"`
}

func abcFunc(cmd *cobra.Command, args []string) {
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

	opts := analytics.ABCOptions{}
	if root.Cfg != nil {
		opts.ClassAThreshold = decimal.NewFromFloat(root.Cfg.ABC.ClassAThreshold)
		opts.ClassBThreshold = decimal.NewFromFloat(root.Cfg.ABC.ClassBThreshold)
	}

	entries := analytics.ClassifyABC(orders, opts)
	payload := abcReport{
		Summary: analytics.SummarizeABC(entries),
		Entries: entries,
	}

	data, err := report.Generate(payload, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	if err := common.WriteOutput(data, root.SharedFlags.Output, log); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
