// Package option provides Option, a value-based optional that never
// allocates and never uses nil to signal absence.
//
//	first := seq.FromSlice(xs).FirstOrNone()
//	if v, ok := first.Get(); ok {
//	    ...
//	}
package option

import (
	"fmt"

	"github.com/kbukum/seqkit/errors"
)

// Option holds either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value   T
	hasSome bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, hasSome: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From converts the comma-ok idiom into an Option.
func From[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Option[T]{value: v, hasSome: true}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.hasSome }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.hasSome }

// Value returns the held value, or an EMPTY_OPTION error for None.
func (o Option[T]) Value() (T, error) {
	if !o.hasSome {
		var zero T
		return zero, errors.EmptyOption()
	}
	return o.value, nil
}

// MustValue returns the held value and panics for None.
func (o Option[T]) MustValue() T {
	if !o.hasSome {
		panic(errors.EmptyOption())
	}
	return o.value
}

// Get returns the held value and whether it exists.
func (o Option[T]) Get() (T, bool) { return o.value, o.hasSome }

// GetValueOrDefault returns the held value, or def for None.
func (o Option[T]) GetValueOrDefault(def T) T {
	if o.hasSome {
		return o.value
	}
	return def
}

// GetValueOrElse returns the held value, or the result of fn for None.
func (o Option[T]) GetValueOrElse(fn func() T) T {
	if o.hasSome {
		return o.value
	}
	return fn()
}

// Match calls some with the value or none when empty.
func (o Option[T]) Match(some func(T), none func()) {
	if o.hasSome {
		if some != nil {
			some(o.value)
		}
		return
	}
	if none != nil {
		none()
	}
}

// Where returns o when it holds a value satisfying fn, None otherwise.
func (o Option[T]) Where(fn func(T) bool) Option[T] {
	if o.hasSome && fn(o.value) {
		return o
	}
	return Option[T]{}
}

// String implements fmt.Stringer: "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.hasSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map projects the held value with fn.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.hasSome {
		return Option[U]{}
	}
	return Option[U]{value: fn(o.value), hasSome: true}
}

// Bind chains an Option-returning function.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.hasSome {
		return Option[U]{}
	}
	return fn(o.value)
}

// Equal reports whether a and b are both None, or both Some with equal
// values. It never fails.
func Equal[T comparable](a, b Option[T]) bool {
	if a.hasSome != b.hasSome {
		return false
	}
	return !a.hasSome || a.value == b.value
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.hasSome != b.hasSome {
		return false
	}
	return !a.hasSome || eq(a.value, b.value)
}
