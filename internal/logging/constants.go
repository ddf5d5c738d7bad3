package logging

// Standardized field names for structured logging. Keeping these in one
// place makes the diagnostic output consistent across the decoder, the
// filter engine and the aggregation engine.
const (
	FieldFile    = "file_path"
	FieldFormat  = "format"
	FieldRow     = "row"
	FieldColumn  = "column"
	FieldHeader  = "header"
	FieldOrderID = "order_id"
	FieldValue   = "value"
	FieldReason  = "reason"
	FieldCount   = "count"
	FieldError   = "error"
)
