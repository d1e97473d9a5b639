package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldAnalyte    = "analyte"
	FieldValue      = "value"
	FieldStatus     = "status"
	FieldLine       = "line"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldSchema     = "schema"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
