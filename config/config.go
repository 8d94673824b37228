package config

import (
	"time"

	"github.com/kbukum/seqkit/builder"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pool"
	"github.com/kbukum/seqkit/validation"
)

// Config is the engine configuration.
//
//	builder:
//	  initial_capacity: 4
//	pool:
//	  max_retained_capacity: 1048576
//	  track: false
//	logging: {level: info, format: console}
//	metrics:
//	  enabled: false
//	  meter_name: seqkit
//	tracing:
//	  enabled: false
//	  sample_rate: 1
type Config struct {
	Builder BuilderConfig `yaml:"builder" mapstructure:"builder"`
	Pool    PoolConfig    `yaml:"pool" mapstructure:"pool"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// BuilderConfig configures builder.Builder defaults.
type BuilderConfig struct {
	InitialCapacity int `yaml:"initial_capacity" mapstructure:"initial_capacity" validate:"min=1,max=1048576"`
}

// PoolConfig configures the default buffer pools.
type PoolConfig struct {
	// MaxRetainedCapacity is rounded up to a power of two.
	MaxRetainedCapacity int  `yaml:"max_retained_capacity" mapstructure:"max_retained_capacity" validate:"min=16"`
	Track               bool `yaml:"track" mapstructure:"track"`
}

// MetricsConfig configures OpenTelemetry pool metrics.
type MetricsConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MeterName string        `yaml:"meter_name" mapstructure:"meter_name"`
	Endpoint  string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure  bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval  time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// TracingConfig configures OpenTelemetry spans around engine tasks.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate of 0 selects 1. Turn tracing off with Enabled instead.
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Builder.InitialCapacity == 0 {
		c.Builder.InitialCapacity = builder.DefaultInitialCapacity
	}
	if c.Pool.MaxRetainedCapacity == 0 {
		c.Pool.MaxRetainedCapacity = pool.DefaultMaxRetainedCapacity
	}
	if c.Metrics.MeterName == "" {
		c.Metrics.MeterName = "seqkit"
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = "localhost:4318"
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = 15 * time.Second
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1
	}
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags first, then cross-field constraints.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("invalid logging configuration").WithCause(err)
	}
	// Builder chunks are rented from power-of-two pool buckets.
	return validation.New().
		Range("builder.initial_capacity", c.Builder.InitialCapacity, 1, c.Pool.MaxRetainedCapacity).
		PowerOfTwo("builder.initial_capacity", c.Builder.InitialCapacity).
		Custom(!c.Metrics.Enabled || c.Metrics.MeterName != "",
			"metrics.meter_name", "is required when metrics are enabled").
		Validate()
}
