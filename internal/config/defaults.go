package config

import "github.com/mrz1836/githooks/internal/constants"

// DefaultConfig returns a new Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		RedmineRef: DefaultRefConfig(),
		ReadOnly: ReadOnlyConfig{
			Patterns: []string{},
		},
	}
}

// DefaultRefConfig returns the built-in redmine-ref settings.
func DefaultRefConfig() RefConfig {
	return RefConfig{
		MaxIDCount:  constants.DefaultMaxIDCount,
		MinIDLength: constants.DefaultMinIDLength,
		MaxIDLength: constants.DefaultMaxIDLength,
	}
}
