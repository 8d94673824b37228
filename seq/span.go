package seq

import "github.com/kbukum/seqkit/list"

// span is the flat-view shape shared by slices and lists. A slice span holds
// its window in items; a list span re-reads the list's view on every
// traversal and applies skip and take to it.
type span[T any] struct {
	items []T
	owner *list.List[T]
	skip  int
	take  int // -1 is unbounded
}

func (s *span[T]) view() []T {
	if s.owner == nil {
		return s.items
	}
	v := s.owner.View()
	v = v[min(s.skip, len(v)):]
	if s.take >= 0 && s.take < len(v) {
		v = v[:s.take]
	}
	return v
}

func (s *span[T]) guard() guard {
	if s.owner == nil {
		return guard{}
	}
	return guard{owner: s.owner, version: s.owner.Version()}
}

func (s *span[T]) clip(skip, take int) span[T] {
	out := *s
	if s.owner == nil {
		v := s.items[min(skip, len(s.items)):]
		if take >= 0 && take < len(v) {
			v = v[:take]
		}
		out.items = v
		return out
	}
	out.skip += skip
	if out.take >= 0 {
		out.take = max(out.take-skip, 0)
	}
	if take >= 0 && (out.take < 0 || take < out.take) {
		out.take = take
	}
	return out
}

func (s *span[T]) Enumerator() Enumerator[T] {
	return &spanEnum[T]{items: s.view(), g: s.guard()}
}

func (s *span[T]) each(yield func(T) bool) {
	v, g := s.view(), s.guard()
	for _, x := range v {
		if !yield(x) {
			return
		}
		g.check()
	}
}

func (s *span[T]) eachBackward(yield func(T) bool) {
	v, g := s.view(), s.guard()
	for i := len(v) - 1; i >= 0; i-- {
		if !yield(v[i]) {
			return
		}
		g.check()
	}
}

func (s *span[T]) count() int { return len(s.view()) }
func (s *span[T]) length() int { return len(s.view()) }
func (s *span[T]) at(i int) T { return s.view()[i] }

func (s *span[T]) where(p func(T) bool) operator[T] {
	return &spanWhere[T]{s: *s, p: p}
}

func (s *span[T]) window(skip, take int) operator[T] {
	c := s.clip(skip, take)
	return &c
}

type spanEnum[T any] struct {
	items []T
	i     int
	cur   T
	g     guard
}

func (e *spanEnum[T]) MoveNext() bool {
	e.g.check()
	if e.i < len(e.items) {
		e.cur = e.items[e.i]
		e.i++
		return true
	}
	var zero T
	e.cur = zero
	return false
}

func (e *spanEnum[T]) Current() T { return e.cur }
func (e *spanEnum[T]) Close() error { return nil }

// --- where ---

type spanWhere[T any] struct {
	s span[T]
	p func(T) bool
}

func (o *spanWhere[T]) Enumerator() Enumerator[T] {
	return &spanWhereEnum[T]{items: o.s.view(), p: o.p, g: o.s.guard()}
}

func (o *spanWhere[T]) each(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for i := scan4(v, 0, o.p); i >= 0; i = scan4(v, i+1, o.p) {
		if !yield(v[i]) {
			return
		}
		g.check()
	}
	g.check()
}

func (o *spanWhere[T]) eachBackward(yield func(T) bool) {
	v, g := o.s.view(), o.s.guard()
	for i := len(v) - 1; i >= 0; i-- {
		ok := o.p(v[i])
		g.check()
		if ok && !yield(v[i]) {
			return
		}
	}
}

func (o *spanWhere[T]) count() int { return countMasked(o.s.view(), o.p) }

func (o *spanWhere[T]) where(p func(T) bool) operator[T] {
	return &spanWhere[T]{s: o.s, p: and(o.p, p)}
}

type spanWhereEnum[T any] struct {
	items []T
	p     func(T) bool
	next  int
	cur   T
	g     guard
}

func (e *spanWhereEnum[T]) MoveNext() bool {
	e.g.check()
	if i := scan4(e.items, e.next, e.p); i >= 0 {
		e.cur = e.items[i]
		e.next = i + 1
		return true
	}
	e.next = len(e.items)
	var zero T
	e.cur = zero
	return false
}

func (e *spanWhereEnum[T]) Current() T { return e.cur }
func (e *spanWhereEnum[T]) Close() error { return nil }

// --- batched scanning ---

// scan4 returns the index of the first element of s at or after from that
// satisfies p, or -1. Four elements are tested per loop iteration and the
// tail is handled by a 3/2/1 remainder switch.
func scan4[T any](s []T, from int, p func(T) bool) int {
	i := from
	for ; i+4 <= len(s); i += 4 {
		if p(s[i]) {
			return i
		}
		if p(s[i+1]) {
			return i + 1
		}
		if p(s[i+2]) {
			return i + 2
		}
		if p(s[i+3]) {
			return i + 3
		}
	}
	switch len(s) - i {
	case 3:
		if p(s[i]) {
			return i
		}
		i++
		fallthrough
	case 2:
		if p(s[i]) {
			return i
		}
		i++
		fallthrough
	case 1:
		if p(s[i]) {
			return i
		}
	}
	return -1
}

// scanSelect4 is scan4 for a predicate over projected values. It returns
// the index and projection of the first match.
func scanSelect4[S, T any](s []S, from int, f func(S) T, p func(T) bool) (int, T) {
	i := from
	for ; i+4 <= len(s); i += 4 {
		if v := f(s[i]); p(v) {
			return i, v
		}
		if v := f(s[i+1]); p(v) {
			return i + 1, v
		}
		if v := f(s[i+2]); p(v) {
			return i + 2, v
		}
		if v := f(s[i+3]); p(v) {
			return i + 3, v
		}
	}
	switch len(s) - i {
	case 3:
		if v := f(s[i]); p(v) {
			return i, v
		}
		i++
		fallthrough
	case 2:
		if v := f(s[i]); p(v) {
			return i, v
		}
		i++
		fallthrough
	case 1:
		if v := f(s[i]); p(v) {
			return i, v
		}
	}
	var zero T
	return -1, zero
}

func countMasked[T any](s []T, p func(T) bool) int {
	var n0, n1, n2, n3 int
	i := 0
	for ; i+4 <= len(s); i += 4 {
		n0 += b2i(p(s[i]))
		n1 += b2i(p(s[i+1]))
		n2 += b2i(p(s[i+2]))
		n3 += b2i(p(s[i+3]))
	}
	for ; i < len(s); i++ {
		n0 += b2i(p(s[i]))
	}
	return n0 + n1 + n2 + n3
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
