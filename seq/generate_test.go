package seq

import (
	"math"
	"testing"

	"github.com/kbukum/seqkit/errors"
)

func TestRange(t *testing.T) {
	q, err := Range(3, 4)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	assertSlice(t, q.ToSlice(), []int{3, 4, 5, 6})
	assertSlice(t, q.Skip(1).Take(2).ToSlice(), []int{4, 5})
	if q.Count() != 4 {
		t.Errorf("Count = %d", q.Count())
	}
	if v, _ := q.Last(); v != 6 {
		t.Errorf("Last = %d", v)
	}
}

func TestGeneratorArguments(t *testing.T) {
	rangeErr := func(start, count int) error {
		_, err := Range(start, count)
		return err
	}
	repeatErr := func(count int) error {
		_, err := Repeat("x", count)
		return err
	}
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"range negative", rangeErr(0, -1), errors.ErrInvalidArgument},
		{"range overflow", rangeErr(math.MaxInt, 2), errors.ErrInvalidArgument},
		{"range at limit", rangeErr(math.MaxInt, 1), nil},
		{"range empty", rangeErr(5, 0), nil},
		{"repeat negative", repeatErr(-3), errors.ErrInvalidArgument},
		{"repeat zero", repeatErr(0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				if tt.err != nil {
					t.Errorf("unexpected error: %v", tt.err)
				}
				return
			}
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("error = %v, want %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestRepeatReturnEmpty(t *testing.T) {
	r, err := Repeat("go", 3)
	if err != nil {
		t.Fatalf("Repeat: %v", err)
	}
	assertSlice(t, r.ToSlice(), []string{"go", "go", "go"})

	if v, err := Return(7).Single(); err != nil || v != 7 {
		t.Errorf("Return.Single = %d, %v", v, err)
	}
	if Empty[int]().Any() {
		t.Error("Empty.Any = true")
	}
}

func TestGeneratorReset(t *testing.T) {
	r, _ := Range(1, 3)
	gens := map[string]Enumerator[int]{
		"range":   r.Enumerator(),
		"return":  Return(1).Enumerator(),
		"forever": RepeatForever(1).Enumerator(),
		"empty":   Empty[int]().Enumerator(),
	}
	for name, e := range gens {
		t.Run(name, func(t *testing.T) {
			first := e.MoveNext()
			var v int
			if first {
				v = e.Current()
			}
			for e.MoveNext() {
				if name == "forever" {
					break
				}
			}
			if err := Reset(e); err != nil {
				t.Fatalf("Reset: %v", err)
			}
			if e.MoveNext() != first {
				t.Fatal("MoveNext after Reset differs from the first call")
			}
			if first && e.Current() != v {
				t.Errorf("Current after Reset = %d, want %d", e.Current(), v)
			}
		})
	}
}

func TestResetUnsupported(t *testing.T) {
	e := FromSlice([]int{1}).Where(isEven).Enumerator()
	if err := Reset(e); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Reset error = %v, want unsupported", err)
	}
}

func TestRepeatForever(t *testing.T) {
	q := RepeatForever(2).Take(5)
	if got := Sum(q); got != 10 {
		t.Errorf("Sum = %d, want 10", got)
	}
	if got := RepeatForever(1).Skip(3).Take(2).Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if v, err := RepeatForever("x").First(); err != nil || v != "x" {
		t.Errorf("First = %q, %v", v, err)
	}
}

func TestRepeatForeverCountPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, errors.ErrInvalidOperation) {
			t.Errorf("recovered %v, want invalid operation", err)
		}
	}()
	RepeatForever(1).Count()
}
