package logging

// Field names shared by every structured log line the application emits.
const (
	FieldStrategy      = "strategy"
	FieldAmount        = "amount"
	FieldTransactionID = "transaction_id"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldFormat        = "format"
	FieldConfigFile    = "config_file"
	FieldAvailable     = "available"
)
