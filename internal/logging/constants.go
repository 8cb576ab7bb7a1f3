package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output filterable.
const (
	FieldFile      = "file"
	FieldLine      = "line"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldKind      = "kind"
	FieldStatement = "statement"
	FieldDirectory = "directory"
	FieldDelimiter = "delimiter"
)
