package config

import "time"

// StoreConfig bounds persistence calls
type StoreConfig struct {
	// OpTimeout is the per-operation deadline for store calls
	OpTimeout time.Duration `mapstructure:"op_timeout"`

	// RetryBackoff is the pause before the single retry of a transient failure
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}
