package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldRunID      = "run_id"
	FieldSchema     = "schema"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRow        = "row"
	FieldType       = "type"
	FieldCount      = "count"
	FieldSuppressed = "suppressed"
	FieldReason     = "reason"
	FieldDuration   = "duration_ms"
)
