// Package root contains the root command for the application
package root

import (
	"fbarros/shopee-insights/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every analysis command.
type CommonFlags struct {
	Input  string
	Output string
	Format string

	// Filter criteria; empty means unconstrained.
	From     string
	To       string
	Statuses []string
	States   []string
	Products []string
	Search   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds flag values accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "shopee-insights",
		Short: "Analyze Shopee order export files (CSV, XLSX, JSON).",
		Long: `shopee-insights ingests a Shopee order export file, applies optional
filters and computes sales analytics: revenue totals, per-day/state/product
breakdowns, status distribution, ABC product classification and best
day/hour/weekday rankings.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if SharedFlags.Format == "" {
				SharedFlags.Format = cfg.Report.Format
			}
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input order export file (.csv, .xlsx, .json)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json or yaml (default from config)")

	Cmd.PersistentFlags().StringVar(&SharedFlags.From, "from", "", "Only include orders created on or after this date")
	Cmd.PersistentFlags().StringVar(&SharedFlags.To, "to", "", "Only include orders created on or before this date")
	Cmd.PersistentFlags().StringSliceVar(&SharedFlags.Statuses, "status", nil, "Only include orders with these exact statuses")
	Cmd.PersistentFlags().StringSliceVar(&SharedFlags.States, "state", nil, "Only include orders delivered to these UF codes")
	Cmd.PersistentFlags().StringSliceVar(&SharedFlags.Products, "product", nil, "Only include orders whose product name contains any of these terms")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Search, "search", "", "Free-text search over product, order ID, buyer and state")
}

// Delimiter returns the configured CSV delimiter as a rune.
func Delimiter() rune {
	if Cfg == nil || Cfg.CSV.Delimiter == "" {
		return ','
	}
	return []rune(Cfg.CSV.Delimiter)[0]
}
