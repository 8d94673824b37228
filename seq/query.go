package seq

import (
	"iter"

	"github.com/kbukum/seqkit/list"
)

// operator is one pending stage over a source. Every shape implements its
// own traversal; where returns the fused stage when the shape allows it.
type operator[T any] interface {
	Enumerable[T]
	// each calls yield for every element until yield returns false.
	each(yield func(T) bool)
	// count returns the number of elements without evaluating a trailing
	// projector.
	count() int
	where(p func(T) bool) operator[T]
}

// indexed is an operator with random access to its elements.
type indexed[T any] interface {
	operator[T]
	length() int
	at(i int) T
	guard() guard
}

// backward is an operator that can walk its elements from the end.
type backward[T any] interface {
	eachBackward(yield func(T) bool)
}

// windowed is an operator that can apply Skip and Take to its view.
type windowed[T any] interface {
	window(skip, take int) operator[T]
}

// Query is an immutable sequence handle: a source plus at most one pending
// stage. Chaining Where and Select fuses stages where the shape allows it.
// A Query does not own its source. The zero Query is empty.
type Query[T any] struct {
	op operator[T]
}

// FromSlice returns a query over s. Later writes to elements of s are
// visible; the length is fixed when FromSlice is called.
func FromSlice[T any](s []T) Query[T] {
	return Query[T]{op: &span[T]{items: s, take: -1}}
}

// FromList returns a query over l. Cursors over l panic with a
// concurrent-modification error if l is structurally changed while they
// are in use.
func FromList[T any](l *list.List[T]) Query[T] {
	if l == nil {
		return Empty[T]()
	}
	return Query[T]{op: &span[T]{owner: l, take: -1}}
}

// FromSeq returns a query over s. Cursors pull from s through iter.Pull and
// must be closed; aggregations range over s directly.
func FromSeq[T any](s iter.Seq[T]) Query[T] {
	if s == nil {
		return Empty[T]()
	}
	return Query[T]{op: &pullSource[T]{seq: s}}
}

// FromEnumerable returns a query over e.
func FromEnumerable[T any](e Enumerable[T]) Query[T] {
	switch e := e.(type) {
	case nil:
		return Empty[T]()
	case Query[T]:
		return e
	default:
		return Query[T]{op: &pullSource[T]{src: e}}
	}
}

func (q Query[T]) source() operator[T] {
	if q.op == nil {
		return &generator[T]{}
	}
	return q.op
}

// Enumerator returns a new cursor over q.
func (q Query[T]) Enumerator() Enumerator[T] {
	return q.source().Enumerator()
}

// All returns q as an iter.Seq for use with range.
func (q Query[T]) All() iter.Seq[T] {
	op := q.source()
	return func(yield func(T) bool) {
		op.each(yield)
	}
}

// Where filters q by p.
func (q Query[T]) Where(p func(T) bool) Query[T] {
	return Query[T]{op: q.source().where(p)}
}

// Select projects every element of q through f.
func Select[T, U any](q Query[T], f func(T) U) Query[U] {
	switch op := q.source().(type) {
	case *span[T]:
		return Query[U]{op: &spanSelect[T, U]{s: *op, f: f}}
	case *spanWhere[T]:
		return Query[U]{op: &spanWhereSelect[T, U]{s: op.s, p: op.p, f: f}}
	case *pullWhere[T]:
		return Query[U]{op: &pullWhereSelect[T, U]{src: op.src, p: op.p, f: f}}
	case indexed[T]:
		return Query[U]{op: &indexSelect[T, U]{src: op, f: f}}
	default:
		return Query[U]{op: &pullSelect[T, U]{src: op, f: f}}
	}
}

// WhereSelect filters q by p and projects the survivors through f in one
// pass. It is equivalent to Select(q.Where(p), f).
func WhereSelect[T, U any](q Query[T], p func(T) bool, f func(T) U) Query[U] {
	return Select(q.Where(p), f)
}

// SelectWhere projects q through f and keeps the projections satisfying p.
// It is equivalent to Select(q, f).Where(p).
func SelectWhere[T, U any](q Query[T], f func(T) U, p func(U) bool) Query[U] {
	return Select(q, f).Where(p)
}

// Skip bypasses the first n elements. Negative n is treated as 0.
func (q Query[T]) Skip(n int) Query[T] {
	if n <= 0 {
		return q
	}
	op := q.source()
	if w, ok := op.(windowed[T]); ok {
		return Query[T]{op: w.window(n, -1)}
	}
	return Query[T]{op: &pullSkip[T]{src: op, n: n}}
}

// Take keeps at most the first n elements. Negative n is treated as 0.
func (q Query[T]) Take(n int) Query[T] {
	n = max(n, 0)
	op := q.source()
	if w, ok := op.(windowed[T]); ok {
		return Query[T]{op: w.window(0, n)}
	}
	return Query[T]{op: &pullTake[T]{src: op, n: n}}
}

func and[T any](p1, p2 func(T) bool) func(T) bool {
	return func(v T) bool { return p1(v) && p2(v) }
}
