// Package list provides a growable list whose structural changes are
// versioned, so cursors over it can detect mutation during traversal.
package list

import (
	"fmt"

	"github.com/kbukum/seqkit/errors"
)

// List is a growable list of T. The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[T any] struct {
	items   []T
	version uint64
}

// New returns an empty list with room for capacity elements.
func New[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// Of returns a list holding a copy of items.
func Of[T any](items ...T) *List[T] {
	l := New[T](len(items))
	l.items = append(l.items, items...)
	return l
}

// Wrap returns a list that takes ownership of items without copying.
func Wrap[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Cap returns the capacity of the backing storage.
func (l *List[T]) Cap() int { return cap(l.items) }

// Version changes on every structural modification.
func (l *List[T]) Version() uint64 { return l.version }

// Add appends v.
func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
	l.version++
}

// Append appends every element of vs.
func (l *List[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	l.items = append(l.items, vs...)
	l.version++
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, errors.IndexOutOfRange(i, len(l.items))
	}
	return l.items[i], nil
}

// Set replaces the element at index i. Replacing an element is not a
// structural change and leaves the version untouched.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return errors.IndexOutOfRange(i, len(l.items))
	}
	l.items[i] = v
	return nil
}

// RemoveAt removes the element at index i, shifting later elements down.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return errors.IndexOutOfRange(i, len(l.items))
	}
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	l.version++
	return nil
}

// Clear removes every element, keeping the backing storage.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.version++
}

// View returns the elements as a slice aliasing the list's storage. The view
// is valid until the next structural modification.
func (l *List[T]) View() []T { return l.items }

// ToSlice returns a copy of the elements.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.items)
}
