package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads delimited text into a Table. The reader is RFC4180 with
// lazy quotes, which accepts the quote-stripped exports the original
// tool produced as well as properly escaped ones. Rows may have fewer
// cells than the header; the decoder pads per field.
func ReadCSV(r io.Reader, delimiter rune) (Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return Table{}, errors.New("missing header row")
	}
	if err != nil {
		return Table{}, fmt.Errorf("reading header row: %w", err)
	}

	var rows [][]any
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading data row: %w", err)
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return Table{}, errors.New("no data rows after header")
	}

	return Table{Headers: headers, Rows: rows}, nil
}
