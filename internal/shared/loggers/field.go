package loggers

const (
	FieldApp         = "app"
	FieldComponent   = "component"
	FieldRunID       = "run_id"
	FieldLogFile     = "log_file"
	FieldLineNumber  = "line_number"
	FieldMatched     = "matched"
	FieldUnmatched   = "unmatched"
	FieldUniqueAddrs = "unique_addresses"
	FieldDuration    = "duration"
	FieldErrorStack  = "error_stack"
	FieldErrorCode   = "error_code"
	FieldMetricsPath = "metrics_textfile"
)
