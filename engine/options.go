package engine

import (
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/version"
)

// Option configures the Engine during creation.
type Option func(*engineOptions)

type engineOptions struct {
	logger          *logger.Logger
	provider        *sdkmetric.MeterProvider
	tracerProvider  *sdktrace.TracerProvider
	version         string
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) *engineOptions {
	o := &engineOptions{version: version.Get().Short()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger instead of one built from cfg.Logging.
func WithLogger(l *logger.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithMeterProvider records pool metrics on mp instead of creating an OTLP
// exporter. It enables metrics regardless of cfg.Metrics.Enabled. The engine
// shuts mp down on Shutdown.
func WithMeterProvider(mp *sdkmetric.MeterProvider) Option {
	return func(o *engineOptions) {
		o.provider = mp
	}
}

// WithTracerProvider records engine spans on tp instead of creating an OTLP
// exporter. It enables tracing regardless of cfg.Tracing.Enabled. The engine
// shuts tp down on Shutdown.
func WithTracerProvider(tp *sdktrace.TracerProvider) Option {
	return func(o *engineOptions) {
		o.tracerProvider = tp
	}
}

// WithVersion sets the service version reported in metric resources. It
// defaults to the seqkit build version.
func WithVersion(v string) Option {
	return func(o *engineOptions) {
		o.version = v
	}
}

// WithGracefulTimeout bounds the time Shutdown spends on hooks and flushing.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *engineOptions) {
		o.gracefulTimeout = &d
	}
}
