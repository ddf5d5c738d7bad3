package sources

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrContainerOpen marks a spreadsheet container that could not be
// opened at all, as opposed to one that opened but held no usable data.
var ErrContainerOpen = errors.New("cannot open spreadsheet container")

// ReadXLSX reads the first sheet of a spreadsheet container into a
// Table. Only the first sheet is consulted; further sheets are ignored.
func ReadXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrContainerOpen, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet '%s': %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, errors.New("missing header row")
	}

	headers := rows[0]
	data := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		data = append(data, cells)
	}

	if len(data) == 0 {
		return Table{}, errors.New("no data rows after header")
	}

	return Table{Headers: headers, Rows: data}, nil
}
