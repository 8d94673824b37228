// Package errors provides the structured error type shared by every seqkit
// package. Errors carry a machine-readable code, a human-readable message and
// optional details, and compare equal to the package sentinels by code:
//
//	_, err := seq.FromSlice([]int{}).First()
//	if errors.Is(err, seqerrors.ErrEmptySequence) {
//	    // no element
//	}
package errors
