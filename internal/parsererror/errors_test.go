package parsererror

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Path: "orders.pdf", Ext: ".pdf"}

	assert.Contains(t, err.Error(), ".pdf")
	assert.Contains(t, err.Error(), "orders.pdf")
	assert.Contains(t, err.Error(), "CSV, XLSX or JSON")
}

func TestEmptyDataError(t *testing.T) {
	err := &EmptyDataError{Path: "orders.csv", Reason: "missing header row"}

	assert.Contains(t, err.Error(), "orders.csv")
	assert.Contains(t, err.Error(), "missing header row")
}

func TestContainerReadErrorUnwrap(t *testing.T) {
	err := &ContainerReadError{Path: "orders.xlsx", Err: os.ErrNotExist}

	assert.Contains(t, err.Error(), "orders.xlsx")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
