package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified seqkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrEmptySequence) matches any empty-sequence failure
// regardless of message or details.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sentinels for errors.Is comparisons. Never returned directly; constructors
// below build a fresh value so details never leak between callers.
var (
	ErrEmptySequence          = New(ErrCodeEmptySequence, "sequence contains no elements")
	ErrMoreThanOne            = New(ErrCodeMoreThanOne, "sequence contains more than one matching element")
	ErrEmptyOption            = New(ErrCodeEmptyOption, "option has no value")
	ErrInvalidArgument        = New(ErrCodeInvalidArgument, "invalid argument")
	ErrIndexOutOfRange        = New(ErrCodeIndexOutOfRange, "index out of range")
	ErrUnsupported            = New(ErrCodeUnsupported, "operation not supported")
	ErrInvalidOperation       = New(ErrCodeInvalidOperation, "invalid operation")
	ErrConcurrentModification = New(ErrCodeConcurrentModification, "collection was modified during enumeration")
	ErrInvalidConfig          = New(ErrCodeInvalidConfig, "invalid configuration")
)

// --- Common Error Constructors ---

// EmptySequence creates a new AppError for an operation that found no element.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: "Sequence contains no elements.",
		Details: map[string]any{"operation": operation},
	}
}

// NoMatch creates a new AppError for a predicate-qualified operation that
// found no qualifying element.
func NoMatch(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: "Sequence contains no matching element.",
		Details: map[string]any{"operation": operation},
	}
}

// MoreThanOne creates a new AppError for a Single-style operation that found
// a second matching element.
func MoreThanOne(operation string) *AppError {
	return &AppError{
		Code: ErrCodeMoreThanOne, Message: "Sequence contains more than one matching element.",
		Details: map[string]any{"operation": operation},
	}
}

// EmptyOption creates a new AppError for reading the value of a None option.
func EmptyOption() *AppError {
	return &AppError{Code: ErrCodeEmptyOption, Message: "Option has no value."}
}

// InvalidArgument creates a new AppError for an argument outside its domain.
func InvalidArgument(argument, reason string) *AppError {
	details := make(map[string]any)
	if argument != "" {
		details["argument"] = argument
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		Details: details,
	}
}

// NegativeCount creates a new AppError for a count argument below zero.
func NegativeCount(argument string, count int) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s must be non-negative", argument),
		Details: map[string]any{"argument": argument, "value": count},
	}
}

// IndexOutOfRange creates a new AppError for an index outside [0, length).
func IndexOutOfRange(index, length int) *AppError {
	return &AppError{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("Index %d is out of range.", index),
		Details: map[string]any{"index": index, "length": length},
	}
}

// Unsupported creates a new AppError for an operation the receiver cannot perform.
func Unsupported(operation, receiver string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupported, Message: fmt.Sprintf("%s is not supported by %s.", operation, receiver),
		Details: map[string]any{"operation": operation, "receiver": receiver},
	}
}

// InvalidOperation creates a new AppError for a receiver in the wrong state.
func InvalidOperation(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidOperation, Message: reason}
}

// AlreadyConsumed creates a new AppError for a single-use value used twice.
func AlreadyConsumed(what string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidOperation, Message: fmt.Sprintf("The %s was already consumed.", what),
		Details: map[string]any{"resource": what},
	}
}

// ConcurrentModification creates a new AppError for a source mutated during traversal.
func ConcurrentModification(source string) *AppError {
	return &AppError{
		Code: ErrCodeConcurrentModification, Message: "Collection was modified; enumeration operation may not execute.",
		Details: map[string]any{"source": source},
	}
}

// InvalidConfig creates a new AppError for configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is is a re-export of the standard library errors.Is so callers that
// import this package do not need both.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As is a re-export of the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
