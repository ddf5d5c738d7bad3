package sources

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"fbarros/shopee-insights/internal/decoder"
	"fbarros/shopee-insights/internal/fileutils"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/models"
	"fbarros/shopee-insights/internal/parsererror"
)

// DetectFormat maps a filename to its input format by extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &parsererror.UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Load reads an export file from disk and decodes it into Order
// records. It is the single entry point the commands use: format
// detection, container reading and decoding are combined here, and all
// structural failures come back as parsererror types with a message the
// caller can show directly.
func Load(path string, delimiter rune, log logging.Logger) ([]models.Order, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	log.Info("Loading order export",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: string(format)})

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, &parsererror.ContainerReadError{Path: path, Err: err}
	}

	var orders []models.Order
	switch format {
	case FormatCSV:
		table, err := ReadCSV(bytes.NewReader(data), delimiter)
		if err != nil {
			return nil, &parsererror.EmptyDataError{Path: path, Reason: err.Error()}
		}
		orders = decoder.Decode(table.Headers, table.Rows, log)

	case FormatXLSX:
		table, err := ReadXLSX(bytes.NewReader(data))
		if err != nil {
			if errors.Is(err, ErrContainerOpen) {
				return nil, &parsererror.ContainerReadError{Path: path, Err: err}
			}
			return nil, &parsererror.EmptyDataError{Path: path, Reason: err.Error()}
		}
		orders = decoder.Decode(table.Headers, table.Rows, log)

	case FormatJSON:
		records, err := ReadJSON(bytes.NewReader(data))
		if err != nil {
			return nil, &parsererror.EmptyDataError{Path: path, Reason: err.Error()}
		}
		for _, record := range records {
			if order, ok := decoder.DecodeKeyed(record, log); ok {
				orders = append(orders, order)
			}
		}
	}

	if len(orders) == 0 {
		return nil, &parsererror.EmptyDataError{Path: path, Reason: "no decodable order records"}
	}

	return orders, nil
}
