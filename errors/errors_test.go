package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeEmptySequence, "empty")
	if err.Code != ErrCodeEmptySequence {
		t.Errorf("expected code %s, got %s", ErrCodeEmptySequence, err.Code)
	}
	if err.Message != "empty" {
		t.Errorf("expected message 'empty', got %q", err.Message)
	}
}

func TestAppError_EmptySequence_Success(t *testing.T) {
	err := EmptySequence("First")
	if err.Code != ErrCodeEmptySequence {
		t.Errorf("expected EMPTY_SEQUENCE, got %s", err.Code)
	}
	if err.Details["operation"] != "First" {
		t.Errorf("expected operation=First, got %v", err.Details["operation"])
	}
}

func TestAppError_NegativeCount_Success(t *testing.T) {
	err := NegativeCount("count", -3)
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["value"] != -3 {
		t.Errorf("expected value=-3, got %v", err.Details["value"])
	}
}

func TestAppError_Is_MatchesByCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"empty sequence", EmptySequence("Min"), ErrEmptySequence, true},
		{"no match is empty class", NoMatch("FirstWhere"), ErrEmptySequence, true},
		{"more than one", MoreThanOne("Single"), ErrMoreThanOne, true},
		{"wrapped", fmt.Errorf("outer: %w", EmptyOption()), ErrEmptyOption, true},
		{"different code", EmptySequence("Max"), ErrMoreThanOne, false},
		{"unsupported", Unsupported("Reset", "slice"), ErrUnsupported, true},
		{"plain error", fmt.Errorf("plain"), ErrEmptySequence, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Is(tc.err, tc.target); got != tc.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tc.err, tc.target, got, tc.want)
			}
		})
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidConfig("bad").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := IndexOutOfRange(5, 3).WithDetails(map[string]any{"extra": "info"})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["index"] != 5 {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"EmptySequence", EmptySequence("First"), ErrCodeEmptySequence},
		{"NoMatch", NoMatch("LastWhere"), ErrCodeEmptySequence},
		{"MoreThanOne", MoreThanOne("Single"), ErrCodeMoreThanOne},
		{"EmptyOption", EmptyOption(), ErrCodeEmptyOption},
		{"InvalidArgument", InvalidArgument("n", "too big"), ErrCodeInvalidArgument},
		{"IndexOutOfRange", IndexOutOfRange(1, 0), ErrCodeIndexOutOfRange},
		{"Unsupported", Unsupported("Reset", "x"), ErrCodeUnsupported},
		{"InvalidOperation", InvalidOperation("x"), ErrCodeInvalidOperation},
		{"AlreadyConsumed", AlreadyConsumed("builder"), ErrCodeInvalidOperation},
		{"ConcurrentModification", ConcurrentModification("list"), ErrCodeConcurrentModification},
		{"InvalidConfig", InvalidConfig("x"), ErrCodeInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if !strings.Contains(tc.err.Error(), string(tc.code)) {
				t.Errorf("Error() should contain code, got %q", tc.err.Error())
			}
		})
	}
}

func TestIsEmptyCode_Table(t *testing.T) {
	for _, code := range []ErrorCode{ErrCodeEmptySequence, ErrCodeMoreThanOne, ErrCodeEmptyOption} {
		if !IsEmptyCode(code) {
			t.Errorf("expected %s to be in the empty class", code)
		}
	}
	for _, code := range []ErrorCode{ErrCodeInvalidArgument, ErrCodeUnsupported, ErrCodeInvalidOperation} {
		if IsEmptyCode(code) {
			t.Errorf("expected %s to NOT be in the empty class", code)
		}
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Unsupported("Reset", "slice"))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeUnsupported {
		t.Errorf("expected UNSUPPORTED_OPERATION, got %s", got.Code)
	}
	if CodeOf(wrapped) != ErrCodeUnsupported {
		t.Errorf("CodeOf = %s", CodeOf(wrapped))
	}
	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = EmptySequence("Max")
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
