package sources

import (
	"os"
	"path/filepath"
	"testing"

	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/parsererror"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
		wantErr  bool
	}{
		{"CSV", "orders.csv", FormatCSV, false},
		{"CSV uppercase", "ORDERS.CSV", FormatCSV, false},
		{"XLSX", "orders.xlsx", FormatXLSX, false},
		{"Legacy XLS", "orders.xls", FormatXLSX, false},
		{"JSON", "orders.json", FormatJSON, false},
		{"Unsupported", "orders.pdf", "", true},
		{"No extension", "orders", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			format, err := DetectFormat(tc.path)

			if tc.wantErr {
				assert.Error(t, err)
				var unsupported *parsererror.UnsupportedFormatError
				assert.ErrorAs(t, err, &unsupported)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, format)
			}
		})
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	log := &logging.MockLogger{}
	path := writeTempFile(t, "orders.csv",
		"ID do pedido,Nome do Produto,Valor Total\n"+
			"2501ABC,Camiseta Azul,\"59,90\"\n")

	orders, err := Load(path, ',', log)

	assert.NoError(t, err)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, "2501ABC", orders[0].OrderID)
		assert.Equal(t, "59.9", orders[0].TotalValue.String())
	}
}

func TestLoadJSON(t *testing.T) {
	log := &logging.MockLogger{}
	path := writeTempFile(t, "orders.json",
		`[{"ID do pedido": "2501ABC", "Valor Total": 59.9}]`)

	orders, err := Load(path, ',', log)

	assert.NoError(t, err)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, "2501ABC", orders[0].OrderID)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	log := &logging.MockLogger{}

	_, err := Load("orders.pdf", ',', log)

	var unsupported *parsererror.UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestLoadMissingFile(t *testing.T) {
	log := &logging.MockLogger{}

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), ',', log)

	var readErr *parsererror.ContainerReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoadEmptyCSV(t *testing.T) {
	log := &logging.MockLogger{}
	path := writeTempFile(t, "orders.csv", "")

	_, err := Load(path, ',', log)

	var empty *parsererror.EmptyDataError
	assert.ErrorAs(t, err, &empty)
}

func TestLoadCSVWithOnlyEmptyRows(t *testing.T) {
	log := &logging.MockLogger{}
	path := writeTempFile(t, "orders.csv", "ID do pedido,Valor Total\n,\n,\n")

	_, err := Load(path, ',', log)

	var empty *parsererror.EmptyDataError
	assert.ErrorAs(t, err, &empty)
}

func TestLoadCorruptXLSX(t *testing.T) {
	log := &logging.MockLogger{}
	path := writeTempFile(t, "orders.xlsx", "not a zip container")

	_, err := Load(path, ',', log)

	var readErr *parsererror.ContainerReadError
	assert.ErrorAs(t, err, &readErr)
}
