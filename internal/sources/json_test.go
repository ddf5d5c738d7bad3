package sources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadJSON(t *testing.T) {
	input := `[
		{"ID do pedido": "2501ABC", "Valor Total": 59.9},
		{"ID do pedido": "2501DEF", "Valor Total": 10}
	]`

	records, err := ReadJSON(strings.NewReader(input))

	assert.NoError(t, err)
	if assert.Len(t, records, 2) {
		assert.Equal(t, "2501ABC", records[0]["ID do pedido"])
		assert.Equal(t, 59.9, records[0]["Valor Total"])
	}
}

func TestReadJSONEmptyArray(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("[]"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))

	assert.Error(t, err)
}

func TestReadJSONObjectInsteadOfArray(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"ID do pedido": "2501ABC"}`))

	assert.Error(t, err)
}
