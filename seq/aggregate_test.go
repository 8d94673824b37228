package seq

import (
	"math"
	"slices"
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/list"
	"github.com/kbukum/seqkit/option"
)

func TestSumWhereEven(t *testing.T) {
	for _, sh := range shapes() {
		t.Run(sh.name, func(t *testing.T) {
			q := sh.make([]int{1, 2, 3, 4})
			if got := SumWhere(q, isEven); got != 6 {
				t.Errorf("SumWhere = %d, want 6", got)
			}
			if got := q.CountWhere(isEven); got != 2 {
				t.Errorf("CountWhere = %d, want 2", got)
			}
			if got := Sum(q); got != 10 {
				t.Errorf("Sum = %d, want 10", got)
			}
		})
	}
}

func TestSumMaskedRemainders(t *testing.T) {
	for n := range 11 {
		src := seqOf(n)
		want := 0
		for _, v := range naiveFilter(src, isEven) {
			want += v
		}
		if got := SumWhere(FromSlice(src), isEven); got != want {
			t.Errorf("n=%d: SumWhere = %d, want %d", n, got, want)
		}
	}
}

func TestSumWhereFloatExcludesNaN(t *testing.T) {
	src := []float64{1.5, math.NaN(), 2.5, math.Inf(1), 4}
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

	if got := SumWhere(FromSlice(src), finite); got != 8 {
		t.Errorf("SumWhere = %v, want 8", got)
	}
	avg := AverageWhere(FromSlice(src), finite)
	if v, err := avg.Value(); err != nil || math.Abs(v-8.0/3) > 1e-12 {
		t.Errorf("AverageWhere = %v, %v", v, err)
	}
}

func TestSumTypes(t *testing.T) {
	if got := Sum(FromSlice([]int8{1, 2, 3})); got != 6 {
		t.Errorf("int8 Sum = %d", got)
	}
	if got := Sum(FromSlice([]uint64{1, 2, 3})); got != 6 {
		t.Errorf("uint64 Sum = %d", got)
	}
	if got := Sum(FromSlice([]float32{0.5, 0.5})); got != 1 {
		t.Errorf("float32 Sum = %v", got)
	}
	if !isFloat[float32]() || !isFloat[float64]() || isFloat[int]() || isFloat[uint8]() {
		t.Error("isFloat mismatch")
	}
}

func TestAverage(t *testing.T) {
	for _, sh := range shapes() {
		t.Run(sh.name, func(t *testing.T) {
			q := sh.make([]int{1, 2, 3, 4})
			if got, err := Average(q); err != nil || got != 2.5 {
				t.Errorf("Average = %v, %v", got, err)
			}
			if got := AverageWhere(q, isEven); !option.Equal(got, option.Some(3.0)) {
				t.Errorf("AverageWhere = %v", got)
			}
			if got := AverageWhere(q, func(n int) bool { return n > 9 }); got.IsSome() {
				t.Errorf("AverageWhere no match = %v", got)
			}
			if _, err := Average(sh.make(nil)); !errors.Is(err, errors.ErrEmptySequence) {
				t.Errorf("Average on empty error = %v", err)
			}
			if AverageOrNone(sh.make(nil)).IsSome() {
				t.Error("AverageOrNone on empty is Some")
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	src := []int{5, 3, 9, 1, 7, 2, 8}
	for _, sh := range shapes() {
		t.Run(sh.name, func(t *testing.T) {
			q := sh.make(src)
			if v, err := Min(q); err != nil || v != 1 {
				t.Errorf("Min = %d, %v", v, err)
			}
			if v, err := Max(q); err != nil || v != 9 {
				t.Errorf("Max = %d, %v", v, err)
			}
			if b, err := MinMax(q); err != nil || b != (Bounds[int]{Min: 1, Max: 9}) {
				t.Errorf("MinMax = %+v, %v", b, err)
			}
			if got := MinWhere(q, isEven); !option.Equal(got, option.Some(2)) {
				t.Errorf("MinWhere = %v", got)
			}
			if got := MaxWhere(q, isEven); !option.Equal(got, option.Some(8)) {
				t.Errorf("MaxWhere = %v", got)
			}
			if got := MinMaxWhere(q, isEven); !option.Equal(got, option.Some(Bounds[int]{Min: 2, Max: 8})) {
				t.Errorf("MinMaxWhere = %v", got)
			}
			if got := MinOrNone(q); !option.Equal(got, option.Some(1)) {
				t.Errorf("MinOrNone = %v", got)
			}
			if got := MaxOrNone(q); !option.Equal(got, option.Some(9)) {
				t.Errorf("MaxOrNone = %v", got)
			}
		})
	}
}

func TestMinMaxEmpty(t *testing.T) {
	for _, sh := range shapes() {
		t.Run(sh.name, func(t *testing.T) {
			q := sh.make(nil)
			if _, err := Min(q); !errors.Is(err, errors.ErrEmptySequence) {
				t.Errorf("Min error = %v", err)
			}
			if _, err := Max(q); !errors.Is(err, errors.ErrEmptySequence) {
				t.Errorf("Max error = %v", err)
			}
			if _, err := MinMax(q); !errors.Is(err, errors.ErrEmptySequence) {
				t.Errorf("MinMax error = %v", err)
			}
			if MinOrNone(q).IsSome() || MaxOrNone(q).IsSome() || MinMaxOrNone(q).IsSome() {
				t.Error("expected None on empty")
			}
			if MinWhere(sh.make(seqOf(3)), func(n int) bool { return n > 3 }).IsSome() {
				t.Error("MinWhere with no match is Some")
			}
		})
	}
}

func TestMinMaxStrings(t *testing.T) {
	q := FromList(list.Of("pear", "apple", "zucchini", "fig"))
	if v, _ := Min(q); v != "apple" {
		t.Errorf("Min = %q", v)
	}
	if v, _ := Max(q.Where(func(s string) bool { return len(s) < 5 })); v != "pear" {
		t.Errorf("Max = %q", v)
	}
}

type person struct {
	name string
	age  int
}

func TestByKey(t *testing.T) {
	people := []person{{"ana", 31}, {"bo", 25}, {"cy", 40}, {"di", 25}, {"ed", 40}}
	age := func(p person) int { return p.age }

	q := FromSlice(people)
	if p, err := MinBy(q, age); err != nil || p.name != "bo" {
		t.Errorf("MinBy = %+v, %v", p, err)
	}
	if p, err := MaxBy(q, age); err != nil || p.name != "cy" {
		t.Errorf("MaxBy = %+v, %v", p, err)
	}
	b, err := MinMaxBy(q, age)
	if err != nil || b.Min.name != "bo" || b.Max.name != "cy" {
		t.Errorf("MinMaxBy = %+v, %v", b, err)
	}
	if got := MinByOrNone(q, age); got.IsNone() {
		t.Error("MinByOrNone is None")
	}
	if got := MaxByOrNone(q, age); got.IsNone() {
		t.Error("MaxByOrNone is None")
	}

	empty := FromSlice[person](nil)
	if _, err := MinBy(empty, age); !errors.Is(err, errors.ErrEmptySequence) {
		t.Errorf("MinBy empty error = %v", err)
	}
	if _, err := MaxBy(empty, age); !errors.Is(err, errors.ErrEmptySequence) {
		t.Errorf("MaxBy empty error = %v", err)
	}
	if _, err := MinMaxBy(empty, age); !errors.Is(err, errors.ErrEmptySequence) {
		t.Errorf("MinMaxBy empty error = %v", err)
	}
	if MinMaxByOrNone(empty, age).IsSome() || MinByOrNone(empty, age).IsSome() || MaxByOrNone(empty, age).IsSome() {
		t.Error("expected None on empty")
	}
}

func TestVectorPathMatchesScalar(t *testing.T) {
	src := []int{4, -2, 17, 0, 3, 17, -9, 5, 11}
	vec := FromSlice(src)
	scalar := FromSeq(slices.Values(src))

	if Sum(vec) != Sum(scalar) {
		t.Error("Sum differs")
	}
	vmin, _ := Min(vec)
	smin, _ := Min(scalar)
	vmax, _ := Max(vec)
	smax, _ := Max(scalar)
	if vmin != smin || vmax != smax {
		t.Errorf("vector (%d, %d), scalar (%d, %d)", vmin, vmax, smin, smax)
	}
	vb, _ := MinMax(vec)
	sb, _ := MinMax(scalar)
	if vb != sb {
		t.Errorf("MinMax vector %+v, scalar %+v", vb, sb)
	}
}
