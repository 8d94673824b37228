package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")
	if cfg.ServiceName != "test-service" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1", cfg.SampleRate)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1, sdktrace.AlwaysSample().Description()},
		{2, sdktrace.AlwaysSample().Description()},
		{0, sdktrace.NeverSample().Description()},
		{0.5, sdktrace.TraceIDRatioBased(0.5).Description()},
	}
	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); got != tt.want {
			t.Errorf("sampler(%v) = %s, want %s", tt.rate, got, tt.want)
		}
	}
}

func TestSpanError(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp, err := NewTracerProvider("test-service", "1.0.0", 1, sdktrace.WithSpanProcessor(rec))
	if err != nil {
		t.Fatalf("NewTracerProvider: %v", err)
	}
	defer tp.Shutdown(context.Background())

	_, clean := tp.Tracer(TracerName).Start(context.Background(), SpanTask)
	SetSpanError(clean, nil)
	clean.End()

	_, failed := tp.Tracer(TracerName).Start(context.Background(), SpanTask)
	SetSpanError(failed, errors.New("boom"))
	failed.End()

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	if spans[0].Status().Code != codes.Unset {
		t.Errorf("status = %v, want unset", spans[0].Status().Code)
	}
	if spans[1].Status().Code != codes.Error || spans[1].Status().Description != "boom" {
		t.Errorf("status = %+v, want error boom", spans[1].Status())
	}
	if len(spans[1].Events()) != 1 {
		t.Errorf("events = %d, want the recorded error", len(spans[1].Events()))
	}
}

func TestNeverSampledSpansAreDropped(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp, err := NewTracerProvider("test-service", "1.0.0", 0, sdktrace.WithSpanProcessor(rec))
	if err != nil {
		t.Fatalf("NewTracerProvider: %v", err)
	}
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer(TracerName).Start(context.Background(), SpanTask)
	SetSpanError(span, errors.New("ignored"))
	span.End()
	if n := len(rec.Ended()); n != 0 {
		t.Errorf("ended spans = %d, want 0", n)
	}
}

func TestInitTracer(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")
	tp, err := InitTracer(context.Background(), &cfg)
	if err != nil {
		t.Skipf("InitTracer failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}
