package seq

import (
	"slices"
	"testing"

	"github.com/kbukum/seqkit/list"
)

// shape builds a query over the given elements in one source shape.
type shape struct {
	name string
	make func([]int) Query[int]
}

func shapes() []shape {
	return []shape{
		{"slice", FromSlice[int]},
		{"list", func(s []int) Query[int] { return FromList(list.Of(s...)) }},
		{"seq", func(s []int) Query[int] { return FromSeq(slices.Values(s)) }},
		{"enumerable", func(s []int) Query[int] { return FromEnumerable[int](&cursorSource{items: s}) }},
		{"range", func(s []int) Query[int] {
			// Range only models ascending runs, so map positions back to values.
			r, _ := Range(0, len(s))
			return Select(r, func(i int) int { return s[i] })
		}},
	}
}

// cursorSource is an Enumerable that records how many cursors were closed.
type cursorSource struct {
	items  []int
	opened int
	closed int
}

func (c *cursorSource) Enumerator() Enumerator[int] {
	c.opened++
	return &cursor{src: c, i: -1}
}

type cursor struct {
	src    *cursorSource
	i      int
	closed bool
}

func (c *cursor) MoveNext() bool {
	if c.i+1 >= len(c.src.items) {
		c.i = len(c.src.items)
		return false
	}
	c.i++
	return true
}

func (c *cursor) Current() int { return c.src.items[c.i] }

func (c *cursor) Close() error {
	if !c.closed {
		c.closed = true
		c.src.closed++
	}
	return nil
}

func seqOf(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func isEven(n int) bool { return n%2 == 0 }

func naiveFilter(s []int, p func(int) bool) []int {
	out := []int{}
	for _, v := range s {
		if p(v) {
			out = append(out, v)
		}
	}
	return out
}

func naiveMap[T, U any](s []T, f func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, f(v))
	}
	return out
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// drainCursor reads every element through the cursor protocol.
func drainCursor[T any](t *testing.T, q Query[T]) []T {
	t.Helper()
	e := q.Enumerator()
	defer e.Close()
	var out []T
	for e.MoveNext() {
		out = append(out, e.Current())
	}
	if e.MoveNext() {
		t.Error("MoveNext returned true after exhaustion")
	}
	return out
}
