package engine

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/builder"
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/pool"
)

// componentLoggers are pinned to the configured logger on New.
var componentLoggers = []string{"pool", "builder", "config", "observability", "engine"}

// Engine holds the process-wide seqkit runtime. Only one Engine should be
// live at a time since it configures package-level defaults.
type Engine struct {
	Name    string
	Version string
	Cfg     *config.Config
	Logger  *logger.Logger
	// Metrics is nil unless metrics are enabled.
	Metrics *observability.PoolMetrics

	provider        *sdkmetric.MeterProvider
	tracerProvider  *sdktrace.TracerProvider
	tracer          trace.Tracer
	tracked         bool
	gracefulTimeout time.Duration

	mu      sync.Mutex
	onStop  []Hook
	stopped bool
}

// New validates cfg and installs it as the runtime defaults. A nil cfg
// selects config.Default(). Enabling metrics turns on pool tracking, since
// only tracked pools record measurements.
func New(ctx context.Context, name string, cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	o := resolveOptions(opts)
	e := &Engine{
		Name:            name,
		Version:         o.version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		e.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		logger.SetGlobalLogger(o.logger)
	} else {
		logger.Init(cfg.Logging)
	}
	logger.RegisterDefaults(componentLoggers...)
	e.Logger = logger.Get("engine")

	if err := e.initMetrics(ctx, o.provider); err != nil {
		return nil, err
	}
	if err := e.initTracing(ctx, o.tracerProvider); err != nil {
		if e.provider != nil {
			_ = e.provider.Shutdown(ctx)
		}
		return nil, err
	}

	e.tracked = cfg.Pool.Track || e.Metrics != nil
	pool.Configure(pool.Options{
		MaxRetainedCapacity: cfg.Pool.MaxRetainedCapacity,
		Track:               e.tracked,
		Metrics:             e.Metrics,
		Logger:              logger.Get("pool"),
	})
	builder.SetDefaults(builder.Defaults{
		InitialCapacity: cfg.Builder.InitialCapacity,
		Logger:          logger.Get("builder"),
	})

	e.Logger.Info("engine configured", logger.Fields(
		"name", name,
		"version", e.Version,
		"initial_capacity", cfg.Builder.InitialCapacity,
		"max_retained_capacity", cfg.Pool.MaxRetainedCapacity,
		"track", e.tracked,
		"metrics", e.Metrics != nil,
		"tracing", e.tracerProvider != nil,
	))
	return e, nil
}

func (e *Engine) initMetrics(ctx context.Context, mp *sdkmetric.MeterProvider) error {
	if mp == nil {
		if !e.Cfg.Metrics.Enabled {
			return nil
		}
		var err error
		mp, err = observability.InitMeter(ctx, &observability.MeterConfig{
			ServiceName:    e.Name,
			ServiceVersion: e.Version,
			Endpoint:       e.Cfg.Metrics.Endpoint,
			Insecure:       e.Cfg.Metrics.Insecure,
			Interval:       e.Cfg.Metrics.Interval,
		})
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	m, err := observability.NewPoolMetrics(mp.Meter(e.Cfg.Metrics.MeterName))
	if err != nil {
		_ = mp.Shutdown(ctx)
		return fmt.Errorf("pool metrics: %w", err)
	}
	e.provider = mp
	e.Metrics = m
	return nil
}

// initTracing selects the tracer for engine spans. Without a provider
// option or cfg.Tracing.Enabled, spans go to the global provider.
func (e *Engine) initTracing(ctx context.Context, tp *sdktrace.TracerProvider) error {
	if tp == nil && e.Cfg.Tracing.Enabled {
		var err error
		tp, err = observability.InitTracer(ctx, &observability.TracerConfig{
			ServiceName:    e.Name,
			ServiceVersion: e.Version,
			Endpoint:       e.Cfg.Tracing.Endpoint,
			Insecure:       e.Cfg.Tracing.Insecure,
			SampleRate:     e.Cfg.Tracing.SampleRate,
		})
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
	}
	if tp == nil {
		e.tracer = observability.Tracer(observability.TracerName)
		return nil
	}
	e.tracerProvider = tp
	e.tracer = tp.Tracer(observability.TracerName)
	return nil
}

// Tracked reports whether default pools account for their buffers.
func (e *Engine) Tracked() bool { return e.tracked }

// RunTask runs task with a context canceled on SIGINT or SIGTERM, then shuts
// the engine down. The task error takes precedence over a shutdown error.
func (e *Engine) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	spanCtx, span := e.tracer.Start(ctx, observability.SpanTask, trace.WithAttributes(
		attribute.String(observability.AttrServiceName, e.Name),
		attribute.String(observability.AttrServiceVersion, e.Version),
	))
	taskCtx, cancel := context.WithCancel(spanCtx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			e.Logger.Info("received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)
	observability.SetSpanError(span, taskErr)
	span.End()

	stopErr := e.Shutdown(context.WithoutCancel(spanCtx))
	if taskErr != nil {
		return taskErr
	}
	return stopErr
}

// Shutdown runs OnStop hooks, reports outstanding pooled buffers, flushes
// metrics and spans, and restores the package defaults. Calls after the first return nil.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return nil
	}
	e.stopped = true
	hooks := e.onStop
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, e.gracefulTimeout)
	defer cancel()

	// The span ends before the providers flush so it is exported.
	spanCtx, span := e.tracer.Start(ctx, observability.SpanShutdown)
	var shutdownErr error
	if err := runHooks(spanCtx, hooks); err != nil {
		e.Logger.Error("stop hook failed", logger.ErrorFields("shutdown", err))
		observability.SetSpanError(span, err)
		shutdownErr = err
	}

	if e.tracked {
		stats := pool.ReportDefaults(spanCtx)
		e.Logger.Info("pool usage", logger.Fields(
			logger.FieldRented, stats.Rented,
			logger.FieldReturned, stats.Returned,
			logger.FieldOutstanding, stats.Outstanding,
			"rejected", stats.Rejected,
		))
		span.SetAttributes(attribute.Int(observability.AttrOutstanding, stats.Outstanding))
	}
	span.End()

	if e.provider != nil {
		if err := e.provider.Shutdown(ctx); err != nil {
			e.Logger.Error("meter provider shutdown failed", logger.ErrorFields("shutdown", err))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}
	if e.tracerProvider != nil {
		if err := e.tracerProvider.Shutdown(ctx); err != nil {
			e.Logger.Error("tracer provider shutdown failed", logger.ErrorFields("shutdown", err))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	pool.Configure(pool.Options{})
	builder.SetDefaults(builder.Defaults{})

	e.Logger.Info("engine stopped")
	return shutdownErr
}
