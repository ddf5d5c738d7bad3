// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"

	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/filter"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/models"
	"fbarros/shopee-insights/internal/sources"
)

// ParseCriteria converts the raw flag values into filter criteria.
// Date bounds accept the same formats as order timestamps. A date flag
// that cannot be parsed is an error: a silent no-op filter would be
// worse than failing loudly.
func ParseCriteria(from, to string, statuses, states, products []string, search string) (filter.Criteria, error) {
	criteria := filter.Criteria{
		Statuses: statuses,
		States:   states,
		Products: products,
		Search:   search,
	}

	if from != "" {
		t, ok := dateutils.ParseOrderDate(from)
		if !ok {
			return filter.Criteria{}, fmt.Errorf("cannot parse --from date: %s", from)
		}
		criteria.Start = &t
	}
	if to != "" {
		t, ok := dateutils.ParseOrderDate(to)
		if !ok {
			return filter.Criteria{}, fmt.Errorf("cannot parse --to date: %s", to)
		}
		criteria.End = &t
	}

	return criteria, nil
}

// LoadFiltered loads the export file and applies the criteria.
func LoadFiltered(input string, criteria filter.Criteria, delimiter rune, log logging.Logger) ([]models.Order, error) {
	if input == "" {
		return nil, fmt.Errorf("no input file given: use --input")
	}

	orders, err := sources.Load(input, delimiter, log)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(orders, criteria)
	log.Info("Applied filters",
		logging.Field{Key: "total", Value: len(orders)},
		logging.Field{Key: "matched", Value: len(filtered)})
	return filtered, nil
}

// WriteOutput writes report bytes to the output file, or stdout when no
// output path was given.
func WriteOutput(data []byte, output string, log logging.Logger) error {
	if output == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	log.Info("Report written",
		logging.Field{Key: logging.FieldFile, Value: output})
	return nil
}
