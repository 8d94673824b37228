package pool

import (
	"context"
	"math/bits"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Pool lends buffers of at least a minimum size and takes them back.
// Implementations must be safe for concurrent use.
type Pool[T any] interface {
	// Rent returns a buffer with len >= minimumSize. Its contents are
	// unspecified unless the previous renter cleared it on return.
	Rent(minimumSize int) []T
	// Return hands buf back. When clear is true the elements are zeroed
	// first so the pool does not keep referenced values alive.
	Return(buf []T, clear bool)
}

// DefaultMaxRetainedCapacity is the largest bucket a Shared pool keeps.
// Larger buffers are allocated on Rent and dropped on Return.
const DefaultMaxRetainedCapacity = 1 << 20

// Shared is a size-bucketed pool. Bucket i holds buffers of capacity 1<<i.
type Shared[T any] struct {
	buckets     []sync.Pool
	maxRetained int
}

// NewShared creates a Shared pool retaining buffers up to maxRetained
// elements. Values below 1 select DefaultMaxRetainedCapacity.
func NewShared[T any](maxRetained int) *Shared[T] {
	if maxRetained < 1 {
		maxRetained = DefaultMaxRetainedCapacity
	}
	maxRetained = ceilPow2(maxRetained)
	return &Shared[T]{
		buckets:     make([]sync.Pool, bucketIndex(maxRetained)+1),
		maxRetained: maxRetained,
	}
}

// MaxRetained returns the capacity of the largest bucket.
func (p *Shared[T]) MaxRetained() int { return p.maxRetained }

// Rent returns a buffer whose length is minimumSize rounded up to a power of
// two. A non-positive size yields an empty, non-nil buffer.
func (p *Shared[T]) Rent(minimumSize int) []T {
	if minimumSize <= 0 {
		return []T{}
	}
	if minimumSize > p.maxRetained {
		return make([]T, minimumSize)
	}
	idx := bucketIndex(minimumSize)
	if v := p.buckets[idx].Get(); v != nil {
		buf := *(v.(*[]T))
		return buf[:cap(buf)]
	}
	return make([]T, 1<<idx)
}

// Return puts buf back in its bucket. Buffers whose capacity is not an exact
// bucket size are dropped.
func (p *Shared[T]) Return(buf []T, clear bool) {
	c := cap(buf)
	if c == 0 || c > p.maxRetained || c&(c-1) != 0 {
		return
	}
	buf = buf[:c]
	if clear {
		clearBuffer(buf)
	}
	p.buckets[bucketIndex(c)].Put(&buf)
}

func bucketIndex(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// --- Default pools ---

// Options configures the pools handed out by Default.
type Options struct {
	// MaxRetainedCapacity bounds the largest retained bucket.
	MaxRetainedCapacity int
	// Track wraps every default pool in a Tracked pool.
	Track bool
	// Metrics receives measurements from tracked pools. Optional.
	Metrics *observability.PoolMetrics
	// Logger receives leak and double-return reports. Optional.
	Logger *logger.Logger
}

var (
	defaultMu      sync.Mutex
	defaultPools   sync.Map // reflect.Type -> Pool[T]
	defaultOptions atomic.Pointer[Options]
)

// Configure replaces the options used for default pools and discards the
// pools created so far. Buffers rented from a discarded pool may still be
// returned to it.
func Configure(opts Options) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOptions.Store(&opts)
	defaultPools.Range(func(k, _ any) bool {
		defaultPools.Delete(k)
		return true
	})
}

// Default returns the process-wide pool for element type T.
func Default[T any]() Pool[T] {
	key := reflect.TypeFor[T]()
	if v, ok := defaultPools.Load(key); ok {
		return v.(Pool[T])
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if v, ok := defaultPools.Load(key); ok {
		return v.(Pool[T])
	}

	var p Pool[T]
	opts := defaultOptions.Load()
	if opts == nil {
		p = NewShared[T](DefaultMaxRetainedCapacity)
	} else {
		p = NewShared[T](opts.MaxRetainedCapacity)
		if opts.Track {
			p = NewTracked(p, "default",
				WithMetrics(opts.Metrics),
				WithLogger(opts.Logger))
		}
	}
	defaultPools.Store(key, p)
	return p
}

type tracker interface {
	Stats() Stats
	Report(ctx context.Context) Stats
}

// DefaultStats sums the counters of every tracked default pool.
func DefaultStats() Stats {
	return sumDefaults(func(t tracker) Stats { return t.Stats() })
}

// ReportDefaults calls Report on every tracked default pool and returns the
// summed counters. Untracked pools contribute nothing.
func ReportDefaults(ctx context.Context) Stats {
	return sumDefaults(func(t tracker) Stats { return t.Report(ctx) })
}

func sumDefaults(fn func(tracker) Stats) Stats {
	var total Stats
	defaultPools.Range(func(_, v any) bool {
		if t, ok := v.(tracker); ok {
			s := fn(t)
			total.Rented += s.Rented
			total.Returned += s.Returned
			total.Rejected += s.Rejected
			total.Outstanding += s.Outstanding
		}
		return true
	})
	return total
}
