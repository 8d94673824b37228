package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys attached to pool measurements.
const (
	AttrElementType = "element_type"
	AttrPool        = "pool"
	AttrCleared     = "cleared"
)

// PoolMetrics holds the instruments recorded by tracked buffer pools.
type PoolMetrics struct {
	rentTotal    metric.Int64Counter
	returnTotal  metric.Int64Counter
	outstanding  metric.Int64UpDownCounter
	rentSize     metric.Int64Histogram
	rejectTotal  metric.Int64Counter
	leakedBuffer metric.Int64Counter
}

// NewPoolMetrics creates pool instruments on the given meter.
func NewPoolMetrics(meter metric.Meter) (*PoolMetrics, error) {
	rentTotal, err := meter.Int64Counter("pool.rent.total",
		metric.WithDescription("Total number of buffers rented"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.rent.total counter: %w", err)
	}

	returnTotal, err := meter.Int64Counter("pool.return.total",
		metric.WithDescription("Total number of buffers returned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.return.total counter: %w", err)
	}

	outstanding, err := meter.Int64UpDownCounter("pool.outstanding",
		metric.WithDescription("Number of buffers currently rented"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.outstanding gauge: %w", err)
	}

	rentSize, err := meter.Int64Histogram("pool.rent.size",
		metric.WithDescription("Capacity of rented buffers in elements"),
		metric.WithUnit("{element}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.rent.size histogram: %w", err)
	}

	rejectTotal, err := meter.Int64Counter("pool.return.rejected",
		metric.WithDescription("Returns of buffers that were not rented or were already returned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.return.rejected counter: %w", err)
	}

	leakedBuffer, err := meter.Int64Counter("pool.leaked",
		metric.WithDescription("Buffers still rented when a leak report was taken"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pool.leaked counter: %w", err)
	}

	return &PoolMetrics{
		rentTotal:    rentTotal,
		returnTotal:  returnTotal,
		outstanding:  outstanding,
		rentSize:     rentSize,
		rejectTotal:  rejectTotal,
		leakedBuffer: leakedBuffer,
	}, nil
}

// RecordRent records one rental of a buffer with the given capacity.
func (m *PoolMetrics) RecordRent(ctx context.Context, pool, elementType string, capacity int) {
	attrs := metric.WithAttributes(
		attribute.String(AttrPool, pool),
		attribute.String(AttrElementType, elementType),
	)
	m.rentTotal.Add(ctx, 1, attrs)
	m.outstanding.Add(ctx, 1, attrs)
	m.rentSize.Record(ctx, int64(capacity), attrs)
}

// RecordReturn records one accepted return.
func (m *PoolMetrics) RecordReturn(ctx context.Context, pool, elementType string, cleared bool) {
	m.returnTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPool, pool),
		attribute.String(AttrElementType, elementType),
		attribute.Bool(AttrCleared, cleared),
	))
	m.outstanding.Add(ctx, -1, metric.WithAttributes(
		attribute.String(AttrPool, pool),
		attribute.String(AttrElementType, elementType),
	))
}

// RecordRejectedReturn records a return of a buffer the pool did not lend.
func (m *PoolMetrics) RecordRejectedReturn(ctx context.Context, pool, elementType string) {
	m.rejectTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPool, pool),
		attribute.String(AttrElementType, elementType),
	))
}

// RecordLeaks records buffers found outstanding by a leak report.
func (m *PoolMetrics) RecordLeaks(ctx context.Context, pool, elementType string, count int) {
	if count == 0 {
		return
	}
	m.leakedBuffer.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String(AttrPool, pool),
		attribute.String(AttrElementType, elementType),
	))
}
