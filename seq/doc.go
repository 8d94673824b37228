// Package seq provides composable, allocation-light query operators over
// slices, versioned lists and pull sequences.
//
// A Query is an immutable handle: a source plus at most one pending stage.
// Nothing runs until an element operation, an aggregation or a
// materialization drives the traversal.
//
// # Shapes
//
// Every stage is specialized for the shape of its source:
//
//   - FromSlice and FromList traverse a flat view by index. Filters test
//     four elements per loop iteration. List cursors panic with a
//     concurrent-modification error when the list changes under them.
//   - FromSeq and FromEnumerable traverse through the source's own
//     iterator. Cursors over an iter.Seq use iter.Pull and must be closed.
//   - Range, Repeat, RepeatForever, Return and Empty generate elements;
//     their cursors can be rewound with Reset.
//
// # Fusion
//
// Adjacent stages merge into one traversal where possible:
//
//   - Where after Where keeps one filter with both predicates.
//   - Select after Where filters and projects in the same pass.
//   - Where after Select tests the projected value in the same pass.
//   - Select after Select on a flat shape projects through an indexed view.
//
// Anything else nests over the generic shape.
//
// # Usage
//
//	q := seq.FromSlice([]int{1, 2, 3, 4})
//	evens := q.Where(func(n int) bool { return n%2 == 0 })
//	total := seq.Sum(evens) // 6
//	squares := seq.Select(evens, func(n int) int { return n * n }).ToSlice()
//
// Element operations return (T, error) or option.Option[T]; errors come
// from the errors package and match its sentinels through errors.Is.
package seq
