package seq_test

import (
	"fmt"
	"slices"

	"github.com/kbukum/seqkit/list"
	"github.com/kbukum/seqkit/seq"
)

func ExampleQuery_Where() {
	evens := seq.FromSlice([]int{1, 2, 3, 4, 5, 6}).Where(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.ToSlice())
	fmt.Println(evens.Count())
	// Output:
	// [2 4 6]
	// 3
}

func ExampleSelect() {
	words := seq.FromList(list.Of("go", "is", "fun"))
	lengths := seq.Select(words, func(s string) int { return len(s) })
	fmt.Println(seq.Sum(lengths))
	// Output: 7
}

func ExampleWhereSelect() {
	q := seq.WhereSelect(seq.FromSlice([]int{1, 2, 3, 4}),
		func(n int) bool { return n > 2 },
		func(n int) string { return fmt.Sprintf("<%d>", n) })
	for s := range q.All() {
		fmt.Println(s)
	}
	// Output:
	// <3>
	// <4>
}

func ExampleSumWhere() {
	q := seq.FromSlice([]int{1, 2, 3, 4})
	fmt.Println(seq.SumWhere(q, func(n int) bool { return n%2 == 0 }))
	// Output: 6
}

func ExampleMinOrNone() {
	fmt.Println(seq.MinOrNone(seq.FromSlice([]int{})))
	fmt.Println(seq.MinOrNone(seq.FromSlice([]int{3, 1, 2})))
	// Output:
	// None
	// Some(1)
}

func ExampleQuery_Single() {
	_, err := seq.FromSlice([]int{1, 2}).Single()
	fmt.Println(err)
	v, _ := seq.FromSlice([]int{42}).Single()
	fmt.Println(v)
	// Output:
	// MORE_THAN_ONE_ELEMENT: Sequence contains more than one matching element.
	// 42
}

func ExampleFromSeq() {
	q := seq.FromSeq(slices.Values([]string{"a", "bb", "ccc"}))
	longest, _ := seq.MaxBy(q, func(s string) int { return len(s) })
	fmt.Println(longest)
	// Output: ccc
}

func ExampleRange() {
	q, _ := seq.Range(1, 5)
	avg, _ := seq.Average(q)
	fmt.Println(avg)
	// Output: 3
}
