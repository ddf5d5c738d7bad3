// Package info summarizes the contents of an order export file
package info

import (
	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/analytics"
	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the info command
var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize an order export file",
	Long: `Show the record count, the covered date range and the distinct
statuses, states and products found in an order export.`,
	Run: infoFunc,
}

type fileInfo struct {
	Records   int      `json:"records" yaml:"records"`
	FirstDate string   `json:"firstDate,omitempty" yaml:"firstDate,omitempty"`
	LastDate  string   `json:"lastDate,omitempty" yaml:"lastDate,omitempty"`
	Statuses  []string `json:"statuses" yaml:"statuses"`
	States    []string `json:"states" yaml:"states"`
	Products  []string `json:"products" yaml:"products"`
}

func infoFunc(cmd *cobra.Command, args []string) {
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

	payload := fileInfo{
		Records:  len(orders),
		Statuses: analytics.DistinctStatuses(orders),
		States:   analytics.DistinctStates(orders),
		Products: analytics.DistinctProducts(orders),
	}
	if first, last, ok := analytics.DateRange(orders); ok {
		payload.FirstDate = first.Format(dateutils.DayLayout)
		payload.LastDate = last.Format(dateutils.DayLayout)
	}

	data, err := report.Generate(payload, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	if err := common.WriteOutput(data, root.SharedFlags.Output, log); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
