// Package validation validates seqkit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection for cross-field rules.
//
// # Struct Tag Validation
//
//	type PoolConfig struct {
//	    MaxRetainedCapacity int `mapstructure:"max_retained_capacity" validate:"min=16"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(cfg.Pool.MaxRetainedCapacity >= cfg.Builder.InitialCapacity,
//	    "pool.max_retained_capacity", "must not be below builder.initial_capacity")
//	err := v.Validate()
package validation
