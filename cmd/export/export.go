// Package export writes filtered order records back out as CSV
package export

import (
	"os"

	"fbarros/shopee-insights/cmd/common"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered order records as CSV",
	Long: `Apply the filter flags to an order export and write the matching
records as CSV with the original export column headers.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
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

	out := os.Stdout
	if root.SharedFlags.Output != "" {
		f, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			root.Log.Fatalf("Error creating output file: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.WithError(err).Warn("Failed to close output file")
			}
		}()
		out = f
	}

	if err := report.WriteOrdersCSV(orders, out, root.Delimiter()); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	log.Info("Exported filtered orders",
		logging.Field{Key: logging.FieldCount, Value: len(orders)})
}
