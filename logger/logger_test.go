package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.component != "test-svc" {
		t.Errorf("expected component 'test-svc', got %q", l.component)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "debug", Format: "json"}, "pool")
	l.Warn("buffer leaked", Fields(FieldCapacity, 16))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if rec["message"] != "buffer leaked" {
		t.Errorf("message = %v", rec["message"])
	}
	if rec[FieldComponent] != "pool" {
		t.Errorf("component = %v", rec[FieldComponent])
	}
	if rec[FieldCapacity] != float64(16) {
		t.Errorf("capacity = %v", rec[FieldCapacity])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "warn", Format: "json"}, "")
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
	l.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected error record, got %q", buf.String())
	}
	if l.Enabled(zerolog.DebugLevel) {
		t.Error("debug should not be enabled at warn level")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "invalid-level", Format: "json", Output: "discard"}, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("SEQKIT_LOG_LEVEL", "debug")
	os.Setenv("SEQKIT_LOG_FORMAT", "json")
	defer os.Unsetenv("SEQKIT_LOG_LEVEL")
	defer os.Unsetenv("SEQKIT_LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: "info", Format: "json"}, "")
	cl := l.WithComponent("builder").WithFields(map[string]any{"k": "v"})
	if cl.Component() != "builder" {
		t.Errorf("expected component builder, got %q", cl.Component())
	}
	cl.Info("hello")
	if !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("expected field in output, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	Nop().Error("dropped")
}

func TestGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
	Init(Config{Level: "info", Format: "json", Output: "discard"})
	if GetGlobalLogger() == l {
		t.Error("expected Init to replace the global logger")
	}
}

func TestRegistry(t *testing.T) {
	defer Reset()
	named := NewDefault("named")
	Register("named", named)
	if Get("named") != named {
		t.Error("expected registered logger")
	}
	if Get("other").Component() != "other" {
		t.Error("expected fallback logger tagged with name")
	}
	RegisterDefaults("a", "b")
	if Get("a").Component() != "a" {
		t.Error("expected RegisterDefaults to register a")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	f := ErrorFields("Return", os.ErrClosed)
	if f[FieldOperation] != "Return" || f[FieldError] == "" {
		t.Errorf("unexpected fields %v", f)
	}
}
