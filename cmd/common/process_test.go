package common

import (
	"os"
	"path/filepath"
	"testing"

	"fbarros/shopee-insights/internal/filter"
	"fbarros/shopee-insights/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestParseCriteria(t *testing.T) {
	criteria, err := ParseCriteria("2025-01-01", "31/01/2025",
		[]string{"Concluído"}, []string{"SP"}, []string{"camiseta"}, "abc")

	assert.NoError(t, err)
	if assert.NotNil(t, criteria.Start) {
		assert.Equal(t, "2025-01-01", criteria.Start.Format("2006-01-02"))
	}
	if assert.NotNil(t, criteria.End) {
		assert.Equal(t, "2025-01-31", criteria.End.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"Concluído"}, criteria.Statuses)
	assert.Equal(t, []string{"SP"}, criteria.States)
	assert.Equal(t, "abc", criteria.Search)
}

func TestParseCriteriaEmptyFlags(t *testing.T) {
	criteria, err := ParseCriteria("", "", nil, nil, nil, "")

	assert.NoError(t, err)
	assert.True(t, criteria.IsZero())
}

func TestParseCriteriaBadDates(t *testing.T) {
	_, err := ParseCriteria("not a date", "", nil, nil, nil, "")
	assert.Error(t, err)

	_, err = ParseCriteria("", "also bad", nil, nil, nil, "")
	assert.Error(t, err)
}

func TestLoadFilteredRequiresInput(t *testing.T) {
	log := &logging.MockLogger{}

	_, err := LoadFiltered("", filter.Criteria{}, ',', log)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}

func TestLoadFiltered(t *testing.T) {
	log := &logging.MockLogger{}
	path := filepath.Join(t.TempDir(), "orders.csv")
	content := "ID do pedido,Status do pedido,Valor Total\n" +
		"A,Concluído,\"10,00\"\n" +
		"B,Cancelado,\"20,00\"\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	orders, err := LoadFiltered(path, filter.Criteria{Statuses: []string{"Concluído"}}, ',', log)

	assert.NoError(t, err)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, "A", orders[0].OrderID)
	}
}

func TestWriteOutputToFile(t *testing.T) {
	log := &logging.MockLogger{}
	path := filepath.Join(t.TempDir(), "report.json")

	err := WriteOutput([]byte(`{"ok":true}`), path, log)

	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}
