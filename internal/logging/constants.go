package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldSheet      = "sheet"
	FieldFormat     = "format"
	FieldDelimiter  = "delimiter"
	FieldCount      = "count"
	FieldDropped    = "dropped"
	FieldRows       = "rows"
	FieldSession    = "session_id"
	FieldOperation  = "operation"
	FieldUnits      = "units"
	FieldCacheHit   = "cache_hit"
	FieldOutputFile = "output_file"
	FieldError      = "error"
)
