package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kbukum/seqkit/pool"
)

// Setting is one line of the engine summary.
type Setting struct {
	Key   string
	Value string
}

// Section groups the settings of one component.
type Section struct {
	Icon     string
	Name     string
	Settings []Setting
}

// Summary returns the effective runtime settings grouped by component.
func (e *Engine) Summary() []Section {
	cfg := e.Cfg
	sections := []Section{
		{"🧱", "Builder", []Setting{
			{"initial_capacity", strconv.Itoa(cfg.Builder.InitialCapacity)},
		}},
		{"♻️", "Pool", []Setting{
			{"max_retained_capacity", strconv.Itoa(cfg.Pool.MaxRetainedCapacity)},
			{"track", strconv.FormatBool(e.tracked)},
		}},
		{"📝", "Logging", []Setting{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
			{"output", cfg.Logging.Output},
		}},
	}

	metrics := Section{Icon: "📊", Name: "Metrics"}
	if e.Metrics == nil {
		metrics.Settings = []Setting{{"enabled", "false"}}
	} else {
		metrics.Settings = []Setting{
			{"enabled", "true"},
			{"meter_name", cfg.Metrics.MeterName},
		}
		if cfg.Metrics.Enabled {
			metrics.Settings = append(metrics.Settings,
				Setting{"endpoint", cfg.Metrics.Endpoint},
				Setting{"interval", cfg.Metrics.Interval.String()},
			)
		}
	}
	sections = append(sections, metrics)

	tracing := Section{Icon: "🔭", Name: "Tracing"}
	if e.tracerProvider == nil {
		tracing.Settings = []Setting{{"enabled", "false"}}
	} else {
		tracing.Settings = []Setting{{"enabled", "true"}}
		if cfg.Tracing.Enabled {
			tracing.Settings = append(tracing.Settings,
				Setting{"endpoint", cfg.Tracing.Endpoint},
				Setting{"sample_rate", strconv.FormatFloat(cfg.Tracing.SampleRate, 'g', -1, 64)},
			)
		}
	}
	return append(sections, tracing)
}

// WriteSummary renders Summary as a tree, followed by live pool counters
// when tracking is on.
func (e *Engine) WriteSummary(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("\n🚀 %s %s\n", e.Name, e.Version)
	for _, s := range e.Summary() {
		ew.printf("\n%s %s\n", s.Icon, s.Name)
		for i, kv := range s.Settings {
			ew.printf("   %s %s: %s\n", treePrefix(i, len(s.Settings)), kv.Key, kv.Value)
		}
	}
	if e.tracked && !e.isStopped() {
		stats := pool.DefaultStats()
		ew.printf("\n📦 Buffers\n")
		ew.printf("   ├── rented: %d\n", stats.Rented)
		ew.printf("   ├── returned: %d\n", stats.Returned)
		ew.printf("   └── outstanding: %d\n", stats.Outstanding)
	}
	ew.printf("\n")
	return ew.err
}

func (e *Engine) isStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
