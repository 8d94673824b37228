package seq

import (
	"iter"

	"github.com/kbukum/seqkit/errors"
)

// Enumerator is a single-use pull cursor.
//
// Current is valid only after MoveNext has returned true. Once MoveNext
// returns false the cursor is exhausted and stays that way. Close releases
// anything the cursor holds and may be called more than once; abandoning a
// cursor over a pull sequence without closing it leaks the sequence's
// coroutine.
type Enumerator[T any] interface {
	MoveNext() bool
	Current() T
	Close() error
}

// Enumerable produces independent cursors over the same elements.
type Enumerable[T any] interface {
	Enumerator() Enumerator[T]
}

// Resetter is implemented by cursors that can rewind to their first element.
// All generator cursors implement it.
type Resetter interface {
	Reset()
}

// Reset rewinds e, or returns an unsupported-operation error when e cannot
// be rewound.
func Reset[T any](e Enumerator[T]) error {
	r, ok := e.(Resetter)
	if !ok {
		return errors.Unsupported("Reset", "enumerator")
	}
	r.Reset()
	return nil
}

// versioned is implemented by sources that count structural changes.
type versioned interface {
	Version() uint64
}

// guard detects structural changes to a versioned source between steps.
// The zero guard never fires.
type guard struct {
	owner   versioned
	version uint64
}

func (g guard) check() {
	if g.owner != nil && g.owner.Version() != g.version {
		panic(errors.ConcurrentModification("list"))
	}
}

// pullEnum adapts an iter.Seq through iter.Pull.
type pullEnum[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

func newPullEnum[T any](s iter.Seq[T]) *pullEnum[T] {
	next, stop := iter.Pull(s)
	return &pullEnum[T]{next: next, stop: stop}
}

func (e *pullEnum[T]) MoveNext() bool {
	if e.done {
		return false
	}
	v, ok := e.next()
	if !ok {
		e.finish()
		return false
	}
	e.cur = v
	return true
}

func (e *pullEnum[T]) Current() T { return e.cur }

func (e *pullEnum[T]) Close() error {
	e.finish()
	return nil
}

func (e *pullEnum[T]) finish() {
	var zero T
	e.cur = zero
	e.done = true
	e.stop()
}

// drain calls yield for each element of e until yield returns false, then
// closes e.
func drain[T any](e Enumerator[T], yield func(T) bool) {
	defer e.Close()
	for e.MoveNext() {
		if !yield(e.Current()) {
			return
		}
	}
}
