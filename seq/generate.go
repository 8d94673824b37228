package seq

import (
	"math"

	"github.com/kbukum/seqkit/errors"
)

// Range returns count consecutive integers starting at start.
func Range(start, count int) (Query[int], error) {
	if count < 0 {
		return Query[int]{}, errors.NegativeCount("count", count)
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return Query[int]{}, errors.InvalidArgument("count", "start+count-1 overflows int")
	}
	return Query[int]{op: &generator[int]{n: count, fn: func(i int) int { return start + i }}}, nil
}

// Repeat returns v count times.
func Repeat[T any](v T, count int) (Query[T], error) {
	if count < 0 {
		return Query[T]{}, errors.NegativeCount("count", count)
	}
	return Query[T]{op: &generator[T]{n: count, fn: func(int) T { return v }}}, nil
}

// Return returns a query holding only v.
func Return[T any](v T) Query[T] {
	return Query[T]{op: &generator[T]{n: 1, fn: func(int) T { return v }}}
}

// Empty returns a query with no elements.
func Empty[T any]() Query[T] {
	return Query[T]{op: &generator[T]{}}
}

// RepeatForever returns v without end. Bound it with Take before
// counting or materializing; Count panics with an invalid-operation error.
func RepeatForever[T any](v T) Query[T] {
	return Query[T]{op: &forever[T]{v: v}}
}

// generator is a finite sequence computed from the index.
type generator[T any] struct {
	n  int
	fn func(i int) T
}

func (g *generator[T]) Enumerator() Enumerator[T] {
	return &generatorEnum[T]{g: g}
}

func (g *generator[T]) each(yield func(T) bool) {
	for i := range g.n {
		if !yield(g.fn(i)) {
			return
		}
	}
}

func (g *generator[T]) eachBackward(yield func(T) bool) {
	for i := g.n - 1; i >= 0; i-- {
		if !yield(g.fn(i)) {
			return
		}
	}
}

func (g *generator[T]) count() int { return g.n }
func (g *generator[T]) length() int { return g.n }
func (g *generator[T]) at(i int) T { return g.fn(i) }
func (g *generator[T]) guard() guard { return guard{} }

func (g *generator[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: g, p: p}
}

func (g *generator[T]) window(skip, take int) operator[T] {
	n := max(g.n-skip, 0)
	if take >= 0 {
		n = min(n, take)
	}
	if skip == 0 {
		return &generator[T]{n: n, fn: g.fn}
	}
	fn := g.fn
	return &generator[T]{n: n, fn: func(i int) T { return fn(i + skip) }}
}

type generatorEnum[T any] struct {
	g   *generator[T]
	i   int
	cur T
}

func (e *generatorEnum[T]) MoveNext() bool {
	if e.i < e.g.n {
		e.cur = e.g.fn(e.i)
		e.i++
		return true
	}
	var zero T
	e.cur = zero
	return false
}

func (e *generatorEnum[T]) Current() T { return e.cur }
func (e *generatorEnum[T]) Close() error { return nil }

func (e *generatorEnum[T]) Reset() {
	e.i = 0
	var zero T
	e.cur = zero
}

// forever repeats one value without end.
type forever[T any] struct {
	v T
}

func (f *forever[T]) Enumerator() Enumerator[T] {
	return &foreverEnum[T]{v: f.v}
}

func (f *forever[T]) each(yield func(T) bool) {
	for yield(f.v) {
	}
}

func (f *forever[T]) count() int {
	panic(errors.InvalidOperation("count of an infinite sequence"))
}

func (f *forever[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: f, p: p}
}

type foreverEnum[T any] struct {
	v       T
	started bool
}

func (e *foreverEnum[T]) MoveNext() bool {
	e.started = true
	return true
}

func (e *foreverEnum[T]) Current() T {
	if !e.started {
		var zero T
		return zero
	}
	return e.v
}

func (e *foreverEnum[T]) Close() error { return nil }
func (e *foreverEnum[T]) Reset() { e.started = false }
