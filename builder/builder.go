// Package builder accumulates elements of unknown count into pool-rented
// chunks and materializes them once, as an exact-length slice, a list, or a
// pool-owned buffer.
//
// Chunk capacities double on every growth. Filled chunks are retained until
// the builder is consumed or closed, at which point every chunk goes back to
// the pool. Chunks of pointer-holding element types are cleared first.
package builder

import (
	"sync/atomic"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/list"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pool"
)

// DefaultInitialCapacity is the capacity of the first rented chunk.
const DefaultInitialCapacity = 4

// Defaults are the package-wide settings used by New when no option
// overrides them.
type Defaults struct {
	InitialCapacity int
	// Logger receives chunk growth at debug level. Nil disables it.
	Logger *logger.Logger
}

var defaults atomic.Pointer[Defaults]

// SetDefaults replaces the package-wide defaults.
func SetDefaults(d Defaults) {
	if d.InitialCapacity < 1 {
		d.InitialCapacity = DefaultInitialCapacity
	}
	defaults.Store(&d)
}

// Option configures a Builder.
type Option[T any] func(*Builder[T])

// WithPool rents chunks from p instead of pool.Default[T]().
func WithPool[T any](p pool.Pool[T]) Option[T] {
	return func(b *Builder[T]) {
		if p != nil {
			b.pool = p
		}
	}
}

// WithInitialCapacity sets the capacity requested for the first chunk.
// Values below 1 are ignored.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(b *Builder[T]) {
		if n > 0 {
			b.initial = n
		}
	}
}

// WithLogger reports chunk growth on l at debug level.
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(b *Builder[T]) { b.log = l }
}

// Builder is a single-use accumulator. It is not safe for concurrent use.
type Builder[T any] struct {
	pool    pool.Pool[T]
	initial int
	clear   bool
	log     *logger.Logger

	chunks   [][]T // filled chunks, oldest first
	current  []T
	count    int // filled prefix of current
	total    int
	consumed bool
}

// New returns an empty builder. No memory is rented until the first Add.
func New[T any](opts ...Option[T]) *Builder[T] {
	b := &Builder[T]{initial: DefaultInitialCapacity, clear: pool.NeedsClear[T]()}
	if d := defaults.Load(); d != nil {
		b.initial = d.InitialCapacity
		b.log = d.Logger
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.pool == nil {
		b.pool = pool.Default[T]()
	}
	return b
}

// Add appends v. Adding to a consumed builder panics.
func (b *Builder[T]) Add(v T) {
	if b.count == len(b.current) {
		b.grow()
	}
	b.current[b.count] = v
	b.count++
	b.total++
}

func (b *Builder[T]) grow() {
	if b.consumed {
		panic(errors.AlreadyConsumed("builder"))
	}
	size := b.initial
	if b.current != nil {
		b.chunks = append(b.chunks, b.current)
		size = len(b.current) * 2
	}
	b.current = b.pool.Rent(size)
	b.count = 0
	if b.log != nil && len(b.chunks) > 0 {
		b.log.Debug("builder chunk grown", logger.Fields(
			logger.FieldCapacity, len(b.current),
			logger.FieldLength, b.total,
			logger.FieldChunks, len(b.chunks)+1,
		))
	}
}

// Len returns the number of elements added so far.
func (b *Builder[T]) Len() int { return b.total }

// ToSlice copies the elements into one exact-length slice and releases
// every chunk.
func (b *Builder[T]) ToSlice() ([]T, error) {
	if b.consumed {
		return nil, errors.AlreadyConsumed("builder")
	}
	out := make([]T, b.total)
	b.copyTo(out)
	b.release()
	return out, nil
}

// ToList copies the elements into a new list and releases every chunk.
func (b *Builder[T]) ToList() (*list.List[T], error) {
	items, err := b.ToSlice()
	if err != nil {
		return nil, err
	}
	return list.Wrap(items), nil
}

// ToPooledBuffer hands the elements over as a pool-owned buffer. A single
// chunk moves into the buffer without copying. Several chunks are copied
// into one buffer rented at the exact total length and then released.
// The caller must Close the returned buffer.
func (b *Builder[T]) ToPooledBuffer() (*pool.Buffer[T], error) {
	if b.consumed {
		return nil, errors.AlreadyConsumed("builder")
	}
	switch {
	case b.current == nil:
		b.consumed = true
		return pool.NewBuffer[T](nil, []T{}, 0, b.clear), nil
	case len(b.chunks) == 0:
		buf := pool.NewBuffer(b.pool, b.current, b.count, b.clear)
		b.current = nil
		b.count = 0
		b.consumed = true
		return buf, nil
	default:
		dst := b.pool.Rent(b.total)
		b.copyTo(dst)
		n := b.total
		b.release()
		return pool.NewBuffer(b.pool, dst, n, b.clear), nil
	}
}

// Close returns every retained chunk to the pool. It is safe to call after a
// terminal operation and more than once.
func (b *Builder[T]) Close() error {
	if b.consumed {
		return nil
	}
	b.release()
	return nil
}

func (b *Builder[T]) copyTo(dst []T) {
	off := 0
	for _, c := range b.chunks {
		off += copy(dst[off:], c)
	}
	copy(dst[off:], b.current[:b.count])
}

func (b *Builder[T]) release() {
	for i, c := range b.chunks {
		b.pool.Return(c, b.clear)
		b.chunks[i] = nil
	}
	if b.current != nil {
		b.pool.Return(b.current, b.clear)
	}
	b.chunks = nil
	b.current = nil
	b.count = 0
	b.total = 0
	b.consumed = true
}
