package logger

// Standard field key constants for structured logging.
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldElementType = "element_type"
	FieldCapacity    = "capacity"
	FieldLength      = "length"
	FieldRented      = "rented"
	FieldReturned    = "returned"
	FieldOutstanding = "outstanding"
	FieldChunks      = "chunks"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	log.Debug("chunk rented", logger.Fields("capacity", 8))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
