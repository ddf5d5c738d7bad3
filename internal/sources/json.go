package sources

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadJSON reads a pre-structured JSON array of keyed objects. Unlike
// the tabular readers this bypasses positional decoding: each object
// already maps column names to values. Numbers arrive as float64 from
// the JSON decoder and flow through the same coercion rules as native
// spreadsheet cells.
func ReadJSON(r io.Reader) ([]map[string]any, error) {
	var records []map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding JSON array: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("JSON array is empty")
	}
	return records, nil
}
