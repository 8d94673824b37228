package engine

import (
	"context"
	"fmt"
)

// Hook is a callback run during shutdown.
type Hook func(ctx context.Context) error

// OnStop registers hooks that run at the start of Shutdown, in order, before
// pools are reported and metrics flushed.
func (e *Engine) OnStop(hooks ...Hook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStop = append(e.onStop, hooks...)
}

// runHooks executes hooks sequentially, returning the first error.
func runHooks(ctx context.Context, hooks []Hook) error {
	for i, h := range hooks {
		if err := h(ctx); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
