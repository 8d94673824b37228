package pool

import (
	"sync/atomic"

	"github.com/kbukum/seqkit/errors"
)

// Buffer owns a rented buffer and the logical length of its contents.
// Close returns the storage to the pool exactly once; later calls are no-ops.
// A Buffer must not be copied after first use.
type Buffer[T any] struct {
	pool     Pool[T]
	buf      []T
	length   int
	clear    bool
	released atomic.Bool
}

// NewBuffer takes ownership of buf, rented from p, whose first length
// elements are meaningful. clear is passed to p.Return on Close.
func NewBuffer[T any](p Pool[T], buf []T, length int, clear bool) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	if length > len(buf) {
		length = len(buf)
	}
	return &Buffer[T]{pool: p, buf: buf, length: length, clear: clear}
}

// Rent rents a buffer of at least length elements from p and wraps it.
// Elements are cleared on Close when T holds references.
func Rent[T any](p Pool[T], length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return NewBuffer(p, p.Rent(length), length, NeedsClear[T]())
}

// Len returns the number of meaningful elements.
func (b *Buffer[T]) Len() int {
	if b.released.Load() {
		return 0
	}
	return b.length
}

// Cap returns the capacity of the underlying storage.
func (b *Buffer[T]) Cap() int {
	if b.released.Load() {
		return 0
	}
	return cap(b.buf)
}

// Slice returns the meaningful elements. The slice aliases pooled storage
// and must not be used after Close. It is nil once the buffer is closed.
func (b *Buffer[T]) Slice() []T {
	if b.released.Load() {
		return nil
	}
	return b.buf[:b.length]
}

// At returns the element at index i.
func (b *Buffer[T]) At(i int) (T, error) {
	if b.released.Load() {
		var zero T
		return zero, errors.AlreadyConsumed("pooled buffer")
	}
	if i < 0 || i >= b.length {
		var zero T
		return zero, errors.IndexOutOfRange(i, b.length)
	}
	return b.buf[i], nil
}

// Close returns the storage to its pool. It is safe to call more than once.
func (b *Buffer[T]) Close() error {
	if !b.released.CompareAndSwap(false, true) {
		return nil
	}
	buf := b.buf
	b.buf = nil
	b.length = 0
	if b.pool != nil {
		b.pool.Return(buf, b.clear)
	}
	return nil
}
