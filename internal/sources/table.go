// Package sources reads raw order export files into a uniform tabular
// shape: a header row plus data rows of cells. A cell is a string when
// it comes from delimited text and may be a native number or timestamp
// when it comes from a typed container.
package sources

// Table is the two-dimensional shape every reader produces.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)
