package seq

import (
	"github.com/kbukum/seqkit/builder"
	"github.com/kbukum/seqkit/list"
	"github.com/kbukum/seqkit/pool"
)

// ToSlice returns the elements in a new slice of exact length. Indexed
// shapes copy directly; others go through a pooled builder.
func (q Query[T]) ToSlice() []T {
	op := q.source()
	if ix, ok := op.(indexed[T]); ok {
		out := make([]T, ix.length())
		fillIndexed(ix, out)
		return out
	}
	b := q.build()
	out, _ := b.ToSlice()
	return out
}

// ToList returns the elements in a new list.
func (q Query[T]) ToList() *list.List[T] {
	return list.Wrap(q.ToSlice())
}

// ToPooledBuffer returns the elements in a buffer rented from the default
// pool for T. The caller must Close it.
func (q Query[T]) ToPooledBuffer() *pool.Buffer[T] {
	op := q.source()
	if ix, ok := op.(indexed[T]); ok {
		buf := pool.Rent(pool.Default[T](), ix.length())
		filled := false
		defer func() {
			if !filled {
				_ = buf.Close()
			}
		}()
		fillIndexed(ix, buf.Slice())
		filled = true
		return buf
	}
	b := q.build()
	buf, _ := b.ToPooledBuffer()
	return buf
}

// build drains q into a builder. The builder is closed if traversal panics.
func (q Query[T]) build() *builder.Builder[T] {
	b := builder.New[T]()
	done := false
	defer func() {
		if !done {
			_ = b.Close()
		}
	}()
	q.source().each(func(v T) bool {
		b.Add(v)
		return true
	})
	done = true
	return b
}

func fillIndexed[T any](ix indexed[T], dst []T) {
	if s, ok := ix.(*span[T]); ok {
		copy(dst, s.view())
		return
	}
	i := 0
	ix.each(func(v T) bool {
		dst[i] = v
		i++
		return true
	})
}
