package seq

import "iter"

// pullSource is the generic shape: an iter.Seq or an Enumerable.
type pullSource[T any] struct {
	seq iter.Seq[T]
	src Enumerable[T]
}

func (o *pullSource[T]) Enumerator() Enumerator[T] {
	if o.seq != nil {
		return newPullEnum(o.seq)
	}
	return o.src.Enumerator()
}

func (o *pullSource[T]) each(yield func(T) bool) {
	if o.seq != nil {
		o.seq(yield)
		return
	}
	drain(o.src.Enumerator(), yield)
}

func (o *pullSource[T]) count() int {
	n := 0
	o.each(func(T) bool {
		n++
		return true
	})
	return n
}

func (o *pullSource[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o, p: p}
}

// --- where ---

type pullWhere[T any] struct {
	src operator[T]
	p   func(T) bool
}

func (o *pullWhere[T]) Enumerator() Enumerator[T] {
	return &pullWhereEnum[T]{src: o.src.Enumerator(), p: o.p}
}

func (o *pullWhere[T]) each(yield func(T) bool) {
	o.src.each(func(v T) bool {
		return !o.p(v) || yield(v)
	})
}

func (o *pullWhere[T]) count() int {
	n := 0
	o.src.each(func(v T) bool {
		n += b2i(o.p(v))
		return true
	})
	return n
}

func (o *pullWhere[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o.src, p: and(o.p, p)}
}

type pullWhereEnum[T any] struct {
	src Enumerator[T]
	p   func(T) bool
	cur T
}

func (e *pullWhereEnum[T]) MoveNext() bool {
	for e.src.MoveNext() {
		if v := e.src.Current(); e.p(v) {
			e.cur = v
			return true
		}
	}
	var zero T
	e.cur = zero
	return false
}

func (e *pullWhereEnum[T]) Current() T { return e.cur }
func (e *pullWhereEnum[T]) Close() error { return e.src.Close() }

// --- select ---

type pullSelect[S, T any] struct {
	src operator[S]
	f   func(S) T
}

func (o *pullSelect[S, T]) Enumerator() Enumerator[T] {
	return &pullSelectEnum[S, T]{src: o.src.Enumerator(), f: o.f}
}

func (o *pullSelect[S, T]) each(yield func(T) bool) {
	o.src.each(func(v S) bool {
		return yield(o.f(v))
	})
}

func (o *pullSelect[S, T]) count() int { return o.src.count() }

func (o *pullSelect[S, T]) where(p func(T) bool) operator[T] {
	return &pullSelectWhere[S, T]{src: o.src, f: o.f, p: p}
}

type pullSelectEnum[S, T any] struct {
	src Enumerator[S]
	f   func(S) T
	cur T
}

func (e *pullSelectEnum[S, T]) MoveNext() bool {
	if e.src.MoveNext() {
		e.cur = e.f(e.src.Current())
		return true
	}
	var zero T
	e.cur = zero
	return false
}

func (e *pullSelectEnum[S, T]) Current() T { return e.cur }
func (e *pullSelectEnum[S, T]) Close() error { return e.src.Close() }

// --- where then select ---

type pullWhereSelect[S, T any] struct {
	src operator[S]
	p   func(S) bool
	f   func(S) T
}

func (o *pullWhereSelect[S, T]) Enumerator() Enumerator[T] {
	return &pullWhereSelectEnum[S, T]{src: o.src.Enumerator(), p: o.p, f: o.f}
}

func (o *pullWhereSelect[S, T]) each(yield func(T) bool) {
	o.src.each(func(v S) bool {
		return !o.p(v) || yield(o.f(v))
	})
}

func (o *pullWhereSelect[S, T]) count() int {
	n := 0
	o.src.each(func(v S) bool {
		n += b2i(o.p(v))
		return true
	})
	return n
}

func (o *pullWhereSelect[S, T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o, p: p}
}

type pullWhereSelectEnum[S, T any] struct {
	src Enumerator[S]
	p   func(S) bool
	f   func(S) T
	cur T
}

func (e *pullWhereSelectEnum[S, T]) MoveNext() bool {
	for e.src.MoveNext() {
		if v := e.src.Current(); e.p(v) {
			e.cur = e.f(v)
			return true
		}
	}
	var zero T
	e.cur = zero
	return false
}

func (e *pullWhereSelectEnum[S, T]) Current() T { return e.cur }
func (e *pullWhereSelectEnum[S, T]) Close() error { return e.src.Close() }

// --- select then where ---

type pullSelectWhere[S, T any] struct {
	src operator[S]
	f   func(S) T
	p   func(T) bool
}

func (o *pullSelectWhere[S, T]) Enumerator() Enumerator[T] {
	return &pullSelectWhereEnum[S, T]{src: o.src.Enumerator(), f: o.f, p: o.p}
}

func (o *pullSelectWhere[S, T]) each(yield func(T) bool) {
	o.src.each(func(v S) bool {
		u := o.f(v)
		return !o.p(u) || yield(u)
	})
}

func (o *pullSelectWhere[S, T]) count() int {
	n := 0
	o.src.each(func(v S) bool {
		n += b2i(o.p(o.f(v)))
		return true
	})
	return n
}

func (o *pullSelectWhere[S, T]) where(p func(T) bool) operator[T] {
	return &pullSelectWhere[S, T]{src: o.src, f: o.f, p: and(o.p, p)}
}

type pullSelectWhereEnum[S, T any] struct {
	src Enumerator[S]
	f   func(S) T
	p   func(T) bool
	cur T
}

func (e *pullSelectWhereEnum[S, T]) MoveNext() bool {
	for e.src.MoveNext() {
		if u := e.f(e.src.Current()); e.p(u) {
			e.cur = u
			return true
		}
	}
	var zero T
	e.cur = zero
	return false
}

func (e *pullSelectWhereEnum[S, T]) Current() T { return e.cur }
func (e *pullSelectWhereEnum[S, T]) Close() error { return e.src.Close() }

// --- skip and take ---

type pullSkip[T any] struct {
	src operator[T]
	n   int
}

func (o *pullSkip[T]) Enumerator() Enumerator[T] {
	return &pullSkipEnum[T]{src: o.src.Enumerator(), n: o.n}
}

func (o *pullSkip[T]) each(yield func(T) bool) {
	i := 0
	o.src.each(func(v T) bool {
		if i < o.n {
			i++
			return true
		}
		return yield(v)
	})
}

func (o *pullSkip[T]) count() int { return max(o.src.count()-o.n, 0) }

func (o *pullSkip[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o, p: p}
}

type pullSkipEnum[T any] struct {
	src Enumerator[T]
	n   int
}

func (e *pullSkipEnum[T]) MoveNext() bool {
	for ; e.n > 0; e.n-- {
		if !e.src.MoveNext() {
			e.n = 0
			return false
		}
	}
	return e.src.MoveNext()
}

func (e *pullSkipEnum[T]) Current() T { return e.src.Current() }
func (e *pullSkipEnum[T]) Close() error { return e.src.Close() }

type pullTake[T any] struct {
	src operator[T]
	n   int
}

func (o *pullTake[T]) Enumerator() Enumerator[T] {
	return &pullTakeEnum[T]{src: o.src.Enumerator(), left: o.n}
}

func (o *pullTake[T]) each(yield func(T) bool) {
	if o.n == 0 {
		return
	}
	i := 0
	o.src.each(func(v T) bool {
		i++
		return yield(v) && i < o.n
	})
}

func (o *pullTake[T]) count() int {
	n := 0
	o.each(func(T) bool {
		n++
		return true
	})
	return n
}

func (o *pullTake[T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o, p: p}
}

type pullTakeEnum[T any] struct {
	src  Enumerator[T]
	left int
	cur  T
}

func (e *pullTakeEnum[T]) MoveNext() bool {
	if e.left > 0 && e.src.MoveNext() {
		e.left--
		e.cur = e.src.Current()
		return true
	}
	e.left = 0
	var zero T
	e.cur = zero
	return false
}

func (e *pullTakeEnum[T]) Current() T { return e.cur }
func (e *pullTakeEnum[T]) Close() error { return e.src.Close() }
