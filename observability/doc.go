// Package observability provides OpenTelemetry metrics for seqkit buffer
// pools and spans for engine tasks.
//
// Pools record rentals, returns, outstanding buffers and rejected double
// returns. Instruments come from any metric.Meter; with no provider
// installed the global no-op meter is used and recording costs nothing.
//
//	cfg := observability.DefaultMeterConfig("my-service")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewPoolMetrics(observability.Meter("seqkit"))
//	metrics.RecordRent(ctx, "default", "int", 64)
//
//	tcfg := observability.DefaultTracerConfig("my-service")
//	tp, err := observability.InitTracer(ctx, &tcfg)
//	defer tp.Shutdown(ctx)
package observability
