package pool

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Stats is a snapshot of a Tracked pool's counters.
type Stats struct {
	Rented      int64
	Returned    int64
	Rejected    int64
	Outstanding int
}

// TrackedOption configures a Tracked pool.
type TrackedOption func(*trackedOptions)

type trackedOptions struct {
	metrics *observability.PoolMetrics
	log     *logger.Logger
}

// WithMetrics records rent and return activity on m. A nil m is ignored.
func WithMetrics(m *observability.PoolMetrics) TrackedOption {
	return func(o *trackedOptions) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLogger reports rejected returns and leaks on l. A nil l is ignored.
func WithLogger(l *logger.Logger) TrackedOption {
	return func(o *trackedOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// Tracked wraps a Pool and accounts for every buffer it lends. A buffer may
// be returned once; a second return, or a return of a buffer the pool never
// lent, is rejected and not forwarded to the inner pool. For zero-size
// element types only the number of outstanding buffers is known, so a
// return is rejected only when none are outstanding.
type Tracked[T any] struct {
	inner       Pool[T]
	name        string
	elementType string
	metrics     *observability.PoolMetrics
	log         *logger.Logger

	rented   atomic.Int64
	returned atomic.Int64
	rejected atomic.Int64

	mu   sync.Mutex
	live map[*T]int // backing array -> capacity
	// Slices of zero-size elements share one base address, so they are
	// counted instead of keyed.
	zeroSize bool
	loose    int
}

// NewTracked wraps inner. name labels logs and metrics.
func NewTracked[T any](inner Pool[T], name string, opts ...TrackedOption) *Tracked[T] {
	o := trackedOptions{log: logger.Get("pool")}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracked[T]{
		inner:       inner,
		name:        name,
		elementType: reflect.TypeFor[T]().String(),
		metrics:     o.metrics,
		log:         o.log,
		live:        make(map[*T]int),
		zeroSize:    unsafe.Sizeof(*new(T)) == 0,
	}
}

// Rent forwards to the inner pool and records the buffer as outstanding.
func (p *Tracked[T]) Rent(minimumSize int) []T {
	buf := p.inner.Rent(minimumSize)
	p.rented.Add(1)
	if c := cap(buf); c > 0 {
		p.mu.Lock()
		if p.zeroSize {
			p.loose++
		} else {
			p.live[unsafe.SliceData(buf[:c])] = c
		}
		p.mu.Unlock()
	}
	if p.metrics != nil {
		p.metrics.RecordRent(context.Background(), p.name, p.elementType, cap(buf))
	}
	return buf
}

// Return forwards buf to the inner pool if it is outstanding.
func (p *Tracked[T]) Return(buf []T, clear bool) {
	if c := cap(buf); c > 0 {
		p.mu.Lock()
		ok := p.release(buf[:c])
		p.mu.Unlock()
		if !ok {
			p.reject(c)
			return
		}
	}
	p.returned.Add(1)
	if p.metrics != nil {
		p.metrics.RecordReturn(context.Background(), p.name, p.elementType, clear)
	}
	p.inner.Return(buf, clear)
}

// release drops buf from the outstanding set. Zero-size buffers are
// accepted while any are outstanding. Callers hold p.mu.
func (p *Tracked[T]) release(buf []T) bool {
	if p.zeroSize {
		if p.loose == 0 {
			return false
		}
		p.loose--
		return true
	}
	key := unsafe.SliceData(buf)
	if _, ok := p.live[key]; !ok {
		return false
	}
	delete(p.live, key)
	return true
}

func (p *Tracked[T]) reject(capacity int) {
	p.rejected.Add(1)
	p.log.Error("buffer returned twice or not rented from this pool", logger.Fields(
		"pool", p.name,
		logger.FieldElementType, p.elementType,
		logger.FieldCapacity, capacity,
	))
	if p.metrics != nil {
		p.metrics.RecordRejectedReturn(context.Background(), p.name, p.elementType)
	}
}

// Stats returns the current counters.
func (p *Tracked[T]) Stats() Stats {
	p.mu.Lock()
	outstanding := len(p.live) + p.loose
	p.mu.Unlock()
	return Stats{
		Rented:      p.rented.Load(),
		Returned:    p.returned.Load(),
		Rejected:    p.rejected.Load(),
		Outstanding: outstanding,
	}
}

// Report logs and records the buffers still outstanding and returns the
// counters. Call it when every renter is expected to have returned.
func (p *Tracked[T]) Report(ctx context.Context) Stats {
	s := p.Stats()
	if s.Outstanding > 0 {
		p.log.Warn("pooled buffers not returned", logger.Fields(
			"pool", p.name,
			logger.FieldElementType, p.elementType,
			logger.FieldRented, s.Rented,
			logger.FieldReturned, s.Returned,
			logger.FieldOutstanding, s.Outstanding,
		))
		if p.metrics != nil {
			p.metrics.RecordLeaks(ctx, p.name, p.elementType, s.Outstanding)
		}
	}
	return s
}
