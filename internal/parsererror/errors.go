// Package parsererror defines the structural failures the ingestion
// pipeline reports to its caller. Field- and row-level defects are never
// represented here: those degrade to defaults with a diagnostic.
package parsererror

import "fmt"

// UnsupportedFormatError reports an input file whose format is not one
// of the accepted kinds (CSV, XLSX, JSON).
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format '%s' for file '%s': use CSV, XLSX or JSON", e.Ext, e.Path)
}

// EmptyDataError reports an input that is structurally readable but
// carries no usable data: no header row, no data rows, or rows that all
// decode to nothing.
type EmptyDataError struct {
	Path   string
	Reason string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("empty or invalid data in file '%s': %s", e.Path, e.Reason)
}

// ContainerReadError reports a file container that could not be read at
// all, such as a corrupt spreadsheet or an unreadable path.
type ContainerReadError struct {
	Path string
	Err  error
}

func (e *ContainerReadError) Error() string {
	return fmt.Sprintf("could not read file '%s': %v", e.Path, e.Err)
}

func (e *ContainerReadError) Unwrap() error {
	return e.Err
}
