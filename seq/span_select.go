package seq

// --- select ---

type spanSelect[S, T any] struct {
	s span[S]
	f func(S) T
}

func (o *spanSelect[S, T]) Enumerator() Enumerator[T] {
	return &spanSelectEnum[S, T]{items: o.s.view(), f: o.f, g: o.s.guard()}
}

func (o *spanSelect[S, T]) each(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for _, x := range v {
		if !yield(o.f(x)) {
			return
		}
		g.check()
	}
}

func (o *spanSelect[S, T]) eachBackward(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for i := len(v) - 1; i >= 0; i-- {
		y := o.f(v[i])
		g.check()
		if !yield(y) {
			return
		}
		g.check()
	}
}

func (o *spanSelect[S, T]) count() int { return len(o.s.view()) }
func (o *spanSelect[S, T]) length() int { return len(o.s.view()) }
func (o *spanSelect[S, T]) at(i int) T { return o.f(o.s.view()[i]) }
func (o *spanSelect[S, T]) guard() guard { return o.s.guard() }

func (o *spanSelect[S, T]) where(p func(T) bool) operator[T] {
	return &spanSelectWhere[S, T]{s: o.s, f: o.f, p: p}
}

func (o *spanSelect[S, T]) window(skip, take int) operator[T] {
	return &spanSelect[S, T]{s: o.s.clip(skip, take), f: o.f}
}

type spanSelectEnum[S, T any] struct {
	items []S
	f     func(S) T
	i     int
	cur   T
	g     guard
}

func (e *spanSelectEnum[S, T]) MoveNext() bool {
	e.g.check()
	if e.i < len(e.items) {
		e.cur = e.f(e.items[e.i])
		e.i++
		return true
	}
	var zero T
	e.cur = zero
	return false
}

func (e *spanSelectEnum[S, T]) Current() T { return e.cur }
func (e *spanSelectEnum[S, T]) Close() error { return nil }

// --- where then select ---

type spanWhereSelect[S, T any] struct {
	s span[S]
	p func(S) bool
	f func(S) T
}

func (o *spanWhereSelect[S, T]) Enumerator() Enumerator[T] {
	return &spanWhereSelectEnum[S, T]{items: o.s.view(), p: o.p, f: o.f, g: o.s.guard()}
}

func (o *spanWhereSelect[S, T]) each(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for i := scan4(v, 0, o.p); i >= 0; i = scan4(v, i+1, o.p) {
		if !yield(o.f(v[i])) {
			return
		}
		g.check()
	}
	g.check()
}

func (o *spanWhereSelect[S, T]) eachBackward(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for i := len(v) - 1; i >= 0; i-- {
		ok := o.p(v[i])
		g.check()
		if !ok {
			continue
		}
		y := o.f(v[i])
		g.check()
		if !yield(y) {
			return
		}
	}
}

func (o *spanWhereSelect[S, T]) count() int { return countMasked(o.s.view(), o.p) }

func (o *spanWhereSelect[S, T]) where(p func(T) bool) operator[T] {
	return &pullWhere[T]{src: o, p: p}
}

type spanWhereSelectEnum[S, T any] struct {
	items []S
	p     func(S) bool
	f     func(S) T
	next  int
	cur   T
	g     guard
}

func (e *spanWhereSelectEnum[S, T]) MoveNext() bool {
	e.g.check()
	if i := scan4(e.items, e.next, e.p); i >= 0 {
		e.cur = e.f(e.items[i])
		e.next = i + 1
		return true
	}
	e.next = len(e.items)
	var zero T
	e.cur = zero
	return false
}

func (e *spanWhereSelectEnum[S, T]) Current() T { return e.cur }
func (e *spanWhereSelectEnum[S, T]) Close() error { return nil }

// --- select then where ---

type spanSelectWhere[S, T any] struct {
	s span[S]
	f func(S) T
	p func(T) bool
}

func (o *spanSelectWhere[S, T]) Enumerator() Enumerator[T] {
	return &spanSelectWhereEnum[S, T]{items: o.s.view(), f: o.f, p: o.p, g: o.s.guard()}
}

func (o *spanSelectWhere[S, T]) each(yield func(T) bool) {
	s, g := o.s.view(), o.s.guard()
	for i, v := scanSelect4(s, 0, o.f, o.p); i >= 0; i, v = scanSelect4(s, i+1, o.f, o.p) {
		if !yield(v) {
			return
		}
		g.check()
	}
	g.check()
}

func (o *spanSelectWhere[S, T]) eachBackward(yield func(T) bool) {
	s, g := o.s.view(), o.s.guard()
	for i := len(s) - 1; i >= 0; i-- {
		v := o.f(s[i])
		ok := o.p(v)
		g.check()
		if ok && !yield(v) {
			return
		}
	}
}

func (o *spanSelectWhere[S, T]) count() int {
	n := 0
	for _, x := range o.s.view() {
		n += b2i(o.p(o.f(x)))
	}
	return n
}

func (o *spanSelectWhere[S, T]) where(p func(T) bool) operator[T] {
	return &spanSelectWhere[S, T]{s: o.s, f: o.f, p: and(o.p, p)}
}

type spanSelectWhereEnum[S, T any] struct {
	items []S
	f     func(S) T
	p     func(T) bool
	next  int
	cur   T
	g     guard
}

func (e *spanSelectWhereEnum[S, T]) MoveNext() bool {
	e.g.check()
	if i, v := scanSelect4(e.items, e.next, e.f, e.p); i >= 0 {
		e.cur = v
		e.next = i + 1
		return true
	}
	e.next = len(e.items)
	var zero T
	e.cur = zero
	return false
}

func (e *spanSelectWhereEnum[S, T]) Current() T { return e.cur }
func (e *spanSelectWhereEnum[S, T]) Close() error { return nil }

// --- select over an indexed view ---

// indexSelect projects an indexed operator without an intermediate cursor.
// Chained selects on flat shapes collapse into nested indexSelects.
type indexSelect[S, T any] struct {
	src indexed[S]
	f   func(S) T
}

func (o *indexSelect[S, T]) Enumerator() Enumerator[T] {
	return &indexSelectEnum[S, T]{src: o.src, f: o.f, n: o.src.length(), g: o.src.guard()}
}

func (o *indexSelect[S, T]) each(yield func(T) bool) {
	n, g := o.src.length(), o.src.guard()
	for i := range n {
		if !yield(o.f(o.src.at(i))) {
			return
		}
		g.check()
	}
}

func (o *indexSelect[S, T]) eachBackward(yield func(T) bool) {
	g := o.src.guard()
	for i := o.src.length() - 1; i >= 0; i-- {
		y := o.f(o.src.at(i))
		g.check()
		if !yield(y) {
			return
		}
		g.check()
	}
}

func (o *indexSelect[S, T]) count() int { return o.src.length() }
func (o *indexSelect[S, T]) length() int { return o.src.length() }
func (o *indexSelect[S, T]) at(i int) T { return o.f(o.src.at(i)) }
func (o *indexSelect[S, T]) guard() guard { return o.src.guard() }

func (o *indexSelect[S, T]) where(p func(T) bool) operator[T] {
	return &pullSelectWhere[S, T]{src: o.src, f: o.f, p: p}
}

type indexSelectEnum[S, T any] struct {
	src indexed[S]
	f   func(S) T
	i   int
	n   int
	cur T
	g   guard
}

func (e *indexSelectEnum[S, T]) MoveNext() bool {
	e.g.check()
	if e.i < e.n {
		e.cur = e.f(e.src.at(e.i))
		e.i++
		return true
	}
	var zero T
	e.cur = zero
	return false
}

func (e *indexSelectEnum[S, T]) Current() T { return e.cur }
func (e *indexSelectEnum[S, T]) Close() error { return nil }
