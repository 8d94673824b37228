// Package engine wires the seqkit runtime from a config.Config.
//
// The seq package works without it: builders and materialization fall back
// to untracked default pools. An Engine applies the configured builder and
// pool defaults, routes component logs through the configured logger, and
// optionally exports pool metrics and task spans over OTLP.
//
//	cfg, err := config.Load("my-service")
//	if err != nil {
//	    return err
//	}
//	eng, err := engine.New(ctx, "my-service", cfg)
//	if err != nil {
//	    return err
//	}
//	defer eng.Shutdown(context.Background())
//
// RunTask wraps a task in an engine.task span and shuts down afterwards.
// Shutdown reports buffers that tracked pools lent but never got back.
package engine
