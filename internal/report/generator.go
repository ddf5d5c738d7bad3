// Package report renders aggregation output for the outside world.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"fbarros/shopee-insights/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Generate marshals any report payload (Metrics, ABC entries, timing
// report) into the requested format: "json" or "yaml". Unsupported
// formats return an error the caller can show directly.
func Generate(payload any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "yaml":
		// Round-trip through JSON so decimal values keep their textual
		// representation; yaml.v3 cannot see decimal's internals.
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		var generic any
		if err := json.Unmarshal(jsonData, &generic); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		data, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteOrdersCSV writes filtered order records as CSV with the original
// export column headers, so a filtered subset can be fed back into any
// tool that understands the export format.
func WriteOrdersCSV(orders []models.Order, w io.Writer, delimiter rune) error {
	if orders == nil {
		return fmt.Errorf("cannot write nil orders to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&orders, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
