package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Empty-sequence errors. Option-returning variants report the empty case as
// None; a second Single match is an error for every variant.
const (
	// ErrCodeEmptySequence indicates an operation needed at least one element.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeMoreThanOne indicates a Single-style operation found a second match.
	ErrCodeMoreThanOne ErrorCode = "MORE_THAN_ONE_ELEMENT"
	// ErrCodeEmptyOption indicates the value of a None option was requested.
	ErrCodeEmptyOption ErrorCode = "EMPTY_OPTION"
)

// Argument errors
const (
	// ErrCodeInvalidArgument indicates an argument is outside its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeIndexOutOfRange indicates an index is outside [0, length).
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
)

// Operation errors
const (
	// ErrCodeUnsupported indicates the receiver cannot perform the operation.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED_OPERATION"
	// ErrCodeInvalidOperation indicates the receiver is in the wrong state,
	// e.g. a builder that was already consumed.
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	// ErrCodeConcurrentModification indicates a source was structurally
	// mutated while a cursor was traversing it.
	ErrCodeConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
)

// Config errors
const (
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

var emptyCodes = map[ErrorCode]bool{
	ErrCodeEmptySequence: true,
	ErrCodeMoreThanOne:   true,
	ErrCodeEmptyOption:   true,
}

// IsEmptyCode reports whether code belongs to the empty-sequence class.
func IsEmptyCode(code ErrorCode) bool {
	return emptyCodes[code]
}
