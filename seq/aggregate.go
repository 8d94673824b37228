package seq

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/internal/vector"
	"github.com/kbukum/seqkit/option"
)

// Number is an integer or floating-point element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds holds the smallest and largest element of a sequence.
type Bounds[T any] struct {
	Min T
	Max T
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// --- Sum ---

// Sum returns the sum of q's elements. Accumulation happens in T, so
// integer sums wrap on overflow. Plain slice and list sources use the
// vectorized primitive.
func Sum[T Number](q Query[T]) T {
	switch op := q.source().(type) {
	case *span[T]:
		return vector.Sum(op.view())
	case *spanWhere[T]:
		sum, _ := sumCountMasked(op.s.view(), op.p)
		return sum
	}
	var sum T
	q.source().each(func(v T) bool {
		sum += v
		return true
	})
	return sum
}

// SumWhere returns the sum of the elements satisfying p.
func SumWhere[T Number](q Query[T], p func(T) bool) T {
	return Sum(q.Where(p))
}

// sumCountMasked sums and counts the elements of s satisfying p. Integer
// kinds multiply by the 0/1 mask instead of branching; float kinds branch
// because NaN and Inf times zero are not zero.
func sumCountMasked[T Number](s []T, p func(T) bool) (T, int) {
	var sum T
	n := 0
	if isFloat[T]() {
		for _, v := range s {
			if p(v) {
				sum += v
				n++
			}
		}
		return sum, n
	}
	var s0, s1, s2, s3 T
	var n0, n1, n2, n3 int
	i := 0
	for ; i+4 <= len(s); i += 4 {
		m0, m1, m2, m3 := b2i(p(s[i])), b2i(p(s[i+1])), b2i(p(s[i+2])), b2i(p(s[i+3]))
		s0 += s[i] * T(m0)
		s1 += s[i+1] * T(m1)
		s2 += s[i+2] * T(m2)
		s3 += s[i+3] * T(m3)
		n0 += m0
		n1 += m1
		n2 += m2
		n3 += m3
	}
	for ; i < len(s); i++ {
		m := b2i(p(s[i]))
		s0 += s[i] * T(m)
		n0 += m
	}
	return s0 + s1 + s2 + s3, n0 + n1 + n2 + n3
}

// --- Average ---

func average[T Number](q Query[T]) (float64, bool) {
	var (
		sum T
		n   int
	)
	switch op := q.source().(type) {
	case *span[T]:
		v := op.view()
		sum, n = vector.Sum(v), len(v)
	case *spanWhere[T]:
		sum, n = sumCountMasked(op.s.view(), op.p)
	default:
		op.each(func(v T) bool {
			sum += v
			n++
			return true
		})
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Average returns the arithmetic mean of q, or an empty-sequence error.
func Average[T Number](q Query[T]) (float64, error) {
	if avg, ok := average(q); ok {
		return avg, nil
	}
	return 0, errors.EmptySequence("Average")
}

// AverageOrNone returns the arithmetic mean of q, or None when q is empty.
func AverageOrNone[T Number](q Query[T]) option.Option[float64] {
	v, ok := average(q)
	return option.From(v, ok)
}

// AverageWhere returns the mean of the elements satisfying p, or None.
func AverageWhere[T Number](q Query[T], p func(T) bool) option.Option[float64] {
	v, ok := average(q.Where(p))
	return option.From(v, ok)
}

// --- Min and Max ---

func minimum[T cmp.Ordered](q Query[T]) (T, bool) {
	op := q.source()
	if s, ok := op.(*span[T]); ok {
		v := s.view()
		if len(v) == 0 {
			var zero T
			return zero, false
		}
		return vector.Min(v), true
	}
	var (
		m      T
		seeded bool
	)
	op.each(func(v T) bool {
		if !seeded {
			m, seeded = v, true
		} else if v < m {
			m = v
		}
		return true
	})
	return m, seeded
}

func maximum[T cmp.Ordered](q Query[T]) (T, bool) {
	op := q.source()
	if s, ok := op.(*span[T]); ok {
		v := s.view()
		if len(v) == 0 {
			var zero T
			return zero, false
		}
		return vector.Max(v), true
	}
	var (
		m      T
		seeded bool
	)
	op.each(func(v T) bool {
		if !seeded {
			m, seeded = v, true
		} else if v > m {
			m = v
		}
		return true
	})
	return m, seeded
}

// Min returns the smallest element, or an empty-sequence error.
func Min[T cmp.Ordered](q Query[T]) (T, error) {
	if m, ok := minimum(q); ok {
		return m, nil
	}
	var zero T
	return zero, errors.EmptySequence("Min")
}

// MinOrNone returns the smallest element, or None.
func MinOrNone[T cmp.Ordered](q Query[T]) option.Option[T] {
	v, ok := minimum(q)
	return option.From(v, ok)
}

// MinWhere returns the smallest element satisfying p, or None.
func MinWhere[T cmp.Ordered](q Query[T], p func(T) bool) option.Option[T] {
	v, ok := minimum(q.Where(p))
	return option.From(v, ok)
}

// Max returns the largest element, or an empty-sequence error.
func Max[T cmp.Ordered](q Query[T]) (T, error) {
	if m, ok := maximum(q); ok {
		return m, nil
	}
	var zero T
	return zero, errors.EmptySequence("Max")
}

// MaxOrNone returns the largest element, or None.
func MaxOrNone[T cmp.Ordered](q Query[T]) option.Option[T] {
	v, ok := maximum(q)
	return option.From(v, ok)
}

// MaxWhere returns the largest element satisfying p, or None.
func MaxWhere[T cmp.Ordered](q Query[T], p func(T) bool) option.Option[T] {
	v, ok := maximum(q.Where(p))
	return option.From(v, ok)
}

// --- MinMax ---

func bounds[T cmp.Ordered](q Query[T]) (Bounds[T], bool) {
	op := q.source()
	if s, ok := op.(*span[T]); ok {
		v := s.view()
		if len(v) == 0 {
			return Bounds[T]{}, false
		}
		lo, hi := vector.MinMax(v)
		return Bounds[T]{Min: lo, Max: hi}, true
	}
	var (
		b      Bounds[T]
		seeded bool
	)
	op.each(func(v T) bool {
		switch {
		case !seeded:
			b, seeded = Bounds[T]{Min: v, Max: v}, true
		case v < b.Min:
			b.Min = v
		case v > b.Max:
			b.Max = v
		}
		return true
	})
	return b, seeded
}

// MinMax returns the smallest and largest elements in one pass, or an
// empty-sequence error.
func MinMax[T cmp.Ordered](q Query[T]) (Bounds[T], error) {
	if b, ok := bounds(q); ok {
		return b, nil
	}
	return Bounds[T]{}, errors.EmptySequence("MinMax")
}

// MinMaxOrNone returns the bounds of q, or None.
func MinMaxOrNone[T cmp.Ordered](q Query[T]) option.Option[Bounds[T]] {
	v, ok := bounds(q)
	return option.From(v, ok)
}

// MinMaxWhere returns the bounds of the elements satisfying p, or None.
func MinMaxWhere[T cmp.Ordered](q Query[T], p func(T) bool) option.Option[Bounds[T]] {
	v, ok := bounds(q.Where(p))
	return option.From(v, ok)
}

// --- By key ---

func minimumBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (T, bool) {
	var (
		m      T
		mk     K
		seeded bool
	)
	q.source().each(func(v T) bool {
		k := key(v)
		if !seeded {
			m, mk, seeded = v, k, true
		} else if k < mk {
			m, mk = v, k
		}
		return true
	})
	return m, seeded
}

func maximumBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (T, bool) {
	var (
		m      T
		mk     K
		seeded bool
	)
	q.source().each(func(v T) bool {
		k := key(v)
		if !seeded {
			m, mk, seeded = v, k, true
		} else if k > mk {
			m, mk = v, k
		}
		return true
	})
	return m, seeded
}

func boundsBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (Bounds[T], bool) {
	var (
		b      Bounds[T]
		lo, hi K
		seeded bool
	)
	q.source().each(func(v T) bool {
		k := key(v)
		switch {
		case !seeded:
			b, lo, hi, seeded = Bounds[T]{Min: v, Max: v}, k, k, true
		case k < lo:
			b.Min, lo = v, k
		case k > hi:
			b.Max, hi = v, k
		}
		return true
	})
	return b, seeded
}

// MinBy returns the element with the smallest key. Ties keep the earliest
// element.
func MinBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (T, error) {
	if m, ok := minimumBy(q, key); ok {
		return m, nil
	}
	var zero T
	return zero, errors.EmptySequence("MinBy")
}

// MinByOrNone returns the element with the smallest key, or None.
func MinByOrNone[T any, K cmp.Ordered](q Query[T], key func(T) K) option.Option[T] {
	v, ok := minimumBy(q, key)
	return option.From(v, ok)
}

// MaxBy returns the element with the largest key. Ties keep the earliest
// element.
func MaxBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (T, error) {
	if m, ok := maximumBy(q, key); ok {
		return m, nil
	}
	var zero T
	return zero, errors.EmptySequence("MaxBy")
}

// MaxByOrNone returns the element with the largest key, or None.
func MaxByOrNone[T any, K cmp.Ordered](q Query[T], key func(T) K) option.Option[T] {
	v, ok := maximumBy(q, key)
	return option.From(v, ok)
}

// MinMaxBy returns the elements with the smallest and largest keys.
func MinMaxBy[T any, K cmp.Ordered](q Query[T], key func(T) K) (Bounds[T], error) {
	if b, ok := boundsBy(q, key); ok {
		return b, nil
	}
	return Bounds[T]{}, errors.EmptySequence("MinMaxBy")
}

// MinMaxByOrNone returns the elements with the smallest and largest keys,
// or None.
func MinMaxByOrNone[T any, K cmp.Ordered](q Query[T], key func(T) K) option.Option[Bounds[T]] {
	v, ok := boundsBy(q, key)
	return option.From(v, ok)
}
