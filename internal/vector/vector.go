// Package vector provides Sum, Min, Max and MinMax over contiguous numeric
// slices. Loops are unrolled four ways with independent accumulators so the
// compiler can keep them in registers. Min, Max and MinMax require a
// non-empty slice.
package vector

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is an integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of s. An empty slice sums to zero.
func Sum[T Number](s []T) T {
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(s); i += 4 {
		s0 += s[i]
		s1 += s[i+1]
		s2 += s[i+2]
		s3 += s[i+3]
	}
	for ; i < len(s); i++ {
		s0 += s[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// Min returns the smallest element of s.
func Min[T cmp.Ordered](s []T) T {
	m0 := s[0]
	m1, m2, m3 := m0, m0, m0
	i := 1
	for ; i+4 <= len(s); i += 4 {
		if s[i] < m0 {
			m0 = s[i]
		}
		if s[i+1] < m1 {
			m1 = s[i+1]
		}
		if s[i+2] < m2 {
			m2 = s[i+2]
		}
		if s[i+3] < m3 {
			m3 = s[i+3]
		}
	}
	for ; i < len(s); i++ {
		if s[i] < m0 {
			m0 = s[i]
		}
	}
	return minOf(minOf(m0, m1), minOf(m2, m3))
}

// Max returns the largest element of s.
func Max[T cmp.Ordered](s []T) T {
	m0 := s[0]
	m1, m2, m3 := m0, m0, m0
	i := 1
	for ; i+4 <= len(s); i += 4 {
		if s[i] > m0 {
			m0 = s[i]
		}
		if s[i+1] > m1 {
			m1 = s[i+1]
		}
		if s[i+2] > m2 {
			m2 = s[i+2]
		}
		if s[i+3] > m3 {
			m3 = s[i+3]
		}
	}
	for ; i < len(s); i++ {
		if s[i] > m0 {
			m0 = s[i]
		}
	}
	return maxOf(maxOf(m0, m1), maxOf(m2, m3))
}

// MinMax returns the smallest and largest elements of s in one pass.
func MinMax[T cmp.Ordered](s []T) (T, T) {
	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func minOf[T cmp.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxOf[T cmp.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}
