package option_test

import (
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/option"
)

func TestNone_Value_ReturnsEmptyOptionError(t *testing.T) {
	_, err := option.None[int]().Value()
	if !errors.Is(err, errors.ErrEmptyOption) {
		t.Fatalf("expected EMPTY_OPTION, got %v", err)
	}
}

func TestSome_GetValueOrDefault_ReturnsValue(t *testing.T) {
	if got := option.Some(7).GetValueOrDefault(99); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := option.None[int]().GetValueOrDefault(99); got != 99 {
		t.Errorf("expected 99, got %d", got)
	}
}

func TestZeroValue_IsNone(t *testing.T) {
	var o option.Option[string]
	if o.IsSome() || !o.IsNone() {
		t.Fatal("zero Option should be None")
	}
}

func TestSome_Value(t *testing.T) {
	v, err := option.Some("x").Value()
	if err != nil || v != "x" {
		t.Fatalf("Value() = %q, %v", v, err)
	}
}

func TestMustValue_PanicsOnNone(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, errors.ErrEmptyOption) {
			t.Errorf("expected EMPTY_OPTION panic, got %v", r)
		}
	}()
	option.None[int]().MustValue()
}

func TestFrom(t *testing.T) {
	if !option.From(1, true).IsSome() {
		t.Error("From(_, true) should be Some")
	}
	if option.From(1, false).IsSome() {
		t.Error("From(_, false) should be None")
	}
}

func TestEqual_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b option.Option[int]
		want bool
	}{
		{"none none", option.None[int](), option.None[int](), true},
		{"some some equal", option.Some(1), option.Some(1), true},
		{"some some different", option.Some(1), option.Some(2), false},
		{"some none", option.Some(0), option.None[int](), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := option.Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
			eq := func(x, y int) bool { return x == y }
			if got := option.EqualFunc(tc.a, tc.b, eq); got != tc.want {
				t.Errorf("EqualFunc = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMapBindWhere(t *testing.T) {
	doubled := option.Map(option.Some(21), func(n int) int { return n * 2 })
	if doubled.GetValueOrDefault(0) != 42 {
		t.Errorf("Map = %v", doubled)
	}
	if option.Map(option.None[int](), func(n int) int { return n }).IsSome() {
		t.Error("Map over None should be None")
	}
	half := option.Bind(option.Some(4), func(n int) option.Option[int] {
		if n%2 != 0 {
			return option.None[int]()
		}
		return option.Some(n / 2)
	})
	if half.GetValueOrDefault(0) != 2 {
		t.Errorf("Bind = %v", half)
	}
	if option.Some(3).Where(func(n int) bool { return n > 5 }).IsSome() {
		t.Error("Where should filter out 3")
	}
}

func TestMatchAndString(t *testing.T) {
	var got int
	option.Some(5).Match(func(n int) { got = n }, func() { got = -1 })
	if got != 5 {
		t.Errorf("Match some: got %d", got)
	}
	option.None[int]().Match(func(n int) { got = n }, func() { got = -1 })
	if got != -1 {
		t.Errorf("Match none: got %d", got)
	}
	if s := option.Some(1).String(); s != "Some(1)" {
		t.Errorf("String = %q", s)
	}
	if s := option.None[int]().String(); s != "None" {
		t.Errorf("String = %q", s)
	}
	if v := option.None[int]().GetValueOrElse(func() int { return 8 }); v != 8 {
		t.Errorf("GetValueOrElse = %d", v)
	}
}
