package config

import (
	"github.com/mrz1836/githooks/internal/errors"
)

// Validate checks the redmine-ref configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - max id count, min id length and max id length must be positive
//   - min id length must not exceed max id length
func (c RefConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"max id count", c.MaxIDCount},
		{"min id length", c.MinIDLength},
		{"max id length", c.MaxIDLength},
	}
	for _, p := range positive {
		if p.value < 1 {
			return errors.Wrapf(errors.ErrValueOutOfRange, "%s must be a positive integer, got %d", p.name, p.value)
		}
	}

	if c.MinIDLength > c.MaxIDLength {
		return errors.Wrapf(errors.ErrIDLengthRange, "min id length %d, max id length %d", c.MinIDLength, c.MaxIDLength)
	}

	return nil
}
