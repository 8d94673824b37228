package seq

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/option"
)

// Count returns the number of elements. A pending projection is not
// evaluated.
func (q Query[T]) Count() int { return q.source().count() }

// CountWhere returns the number of elements satisfying p.
func (q Query[T]) CountWhere(p func(T) bool) int { return q.Where(p).Count() }

// Any reports whether q has at least one element.
func (q Query[T]) Any() bool {
	op := q.source()
	if ix, ok := op.(indexed[T]); ok {
		return ix.length() > 0
	}
	found := false
	op.each(func(T) bool {
		found = true
		return false
	})
	return found
}

// AnyWhere reports whether some element satisfies p.
func (q Query[T]) AnyWhere(p func(T) bool) bool { return q.Where(p).Any() }

// Every reports whether all elements satisfy p. It is true for an empty
// query.
func (q Query[T]) Every(p func(T) bool) bool {
	return !q.AnyWhere(func(v T) bool { return !p(v) })
}

// ForEach calls fn for every element in order.
func (q Query[T]) ForEach(fn func(T)) {
	q.source().each(func(v T) bool {
		fn(v)
		return true
	})
}

// --- First ---

func (q Query[T]) first() (T, bool) {
	op := q.source()
	var (
		out   T
		found bool
	)
	op.each(func(v T) bool {
		out, found = v, true
		return false
	})
	return out, found
}

// First returns the first element, or an empty-sequence error.
func (q Query[T]) First() (T, error) {
	if v, ok := q.first(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.EmptySequence("First")
}

// FirstWhere returns the first element satisfying p, or an empty-sequence
// error.
func (q Query[T]) FirstWhere(p func(T) bool) (T, error) {
	if v, ok := q.Where(p).first(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.NoMatch("FirstWhere")
}

// FirstOrNone returns the first element, or None.
func (q Query[T]) FirstOrNone() option.Option[T] {
	v, ok := q.first()
	return option.From(v, ok)
}

// FirstOrNoneWhere returns the first element satisfying p, or None.
func (q Query[T]) FirstOrNoneWhere(p func(T) bool) option.Option[T] {
	v, ok := q.Where(p).first()
	return option.From(v, ok)
}

// --- Single ---

// single returns the only element and how many were seen, stopping at two.
func (q Query[T]) single() (T, int) {
	var (
		out T
		n   int
	)
	q.source().each(func(v T) bool {
		n++
		if n == 1 {
			out = v
		}
		return n < 2
	})
	if n > 1 {
		var zero T
		return zero, n
	}
	return out, n
}

func (q Query[T]) singleResult(op string, empty func(string) *errors.AppError) (T, error) {
	v, n := q.single()
	switch n {
	case 0:
		return v, empty(op)
	case 1:
		return v, nil
	default:
		return v, errors.MoreThanOne(op)
	}
}

// Single returns the only element. It fails with an empty-sequence error when
// q is empty and a more-than-one error when q has a second element.
func (q Query[T]) Single() (T, error) {
	return q.singleResult("Single", errors.EmptySequence)
}

// SingleWhere returns the only element satisfying p.
func (q Query[T]) SingleWhere(p func(T) bool) (T, error) {
	return q.Where(p).singleResult("SingleWhere", errors.NoMatch)
}

// SingleOrNone returns the only element, or None when q is empty. A second
// element is still an error.
func (q Query[T]) SingleOrNone() (option.Option[T], error) {
	return q.singleOrNone("SingleOrNone")
}

// SingleOrNoneWhere returns the only element satisfying p, or None when none
// does. A second match is still an error.
func (q Query[T]) SingleOrNoneWhere(p func(T) bool) (option.Option[T], error) {
	return q.Where(p).singleOrNone("SingleOrNoneWhere")
}

func (q Query[T]) singleOrNone(op string) (option.Option[T], error) {
	v, n := q.single()
	switch n {
	case 0:
		return option.None[T](), nil
	case 1:
		return option.Some(v), nil
	default:
		return option.None[T](), errors.MoreThanOne(op)
	}
}

// --- Last ---

func (q Query[T]) last() (T, bool) {
	op := q.source()
	var (
		out   T
		found bool
	)
	if b, ok := op.(backward[T]); ok {
		b.eachBackward(func(v T) bool {
			out, found = v, true
			return false
		})
		return out, found
	}
	op.each(func(v T) bool {
		out, found = v, true
		return true
	})
	return out, found
}

// Last returns the last element, or an empty-sequence error. Flat shapes
// scan from the end.
func (q Query[T]) Last() (T, error) {
	if v, ok := q.last(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.EmptySequence("Last")
}

// LastWhere returns the last element satisfying p, or an empty-sequence
// error.
func (q Query[T]) LastWhere(p func(T) bool) (T, error) {
	if v, ok := q.Where(p).last(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.NoMatch("LastWhere")
}

// LastOrNone returns the last element, or None.
func (q Query[T]) LastOrNone() option.Option[T] {
	v, ok := q.last()
	return option.From(v, ok)
}

// LastOrNoneWhere returns the last element satisfying p, or None.
func (q Query[T]) LastOrNoneWhere(p func(T) bool) option.Option[T] {
	v, ok := q.Where(p).last()
	return option.From(v, ok)
}

// --- ElementAt ---

func (q Query[T]) elementAt(i int) (T, int, bool) {
	var zero T
	if i < 0 {
		return zero, 0, false
	}
	op := q.source()
	if ix, ok := op.(indexed[T]); ok {
		n := ix.length()
		if i >= n {
			return zero, n, false
		}
		return ix.at(i), n, true
	}
	var (
		out   T
		seen  int
		found bool
	)
	op.each(func(v T) bool {
		if seen == i {
			out, found = v, true
			return false
		}
		seen++
		return true
	})
	return out, seen, found
}

// ElementAt returns the element at index i, or an index-out-of-range error.
func (q Query[T]) ElementAt(i int) (T, error) {
	v, n, ok := q.elementAt(i)
	if !ok {
		return v, errors.IndexOutOfRange(i, n)
	}
	return v, nil
}

// ElementAtOrNone returns the element at index i, or None.
func (q Query[T]) ElementAtOrNone(i int) option.Option[T] {
	v, _, ok := q.elementAt(i)
	return option.From(v, ok)
}

// Contains reports whether q holds an element equal to v.
func Contains[T comparable](q Query[T], v T) bool {
	return q.AnyWhere(func(x T) bool { return x == v })
}

// Aggregate folds q into an accumulator starting from seed.
func Aggregate[T, A any](q Query[T], seed A, fn func(A, T) A) A {
	acc := seed
	q.source().each(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}
