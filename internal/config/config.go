// Package config provides configuration management for githooks with layered precedence.
//
// Configuration sources are resolved in the following order (highest precedence first):
//  1. CLI flags
//  2. Environment variables (MAX_ID_COUNT, ONE_LINER, READONLY_PATTERNS, ...)
//  3. Project config (.githooks.yaml at the repository top level)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for githooks.
type Config struct {
	// RedmineRef contains settings for the prepare-commit-msg reference hook.
	RedmineRef RefConfig `yaml:"redmine_ref" json:"redmine_ref" mapstructure:"redmine_ref"`

	// ReadOnly contains settings for the pre-commit permission hook.
	ReadOnly ReadOnlyConfig `yaml:"readonly" json:"readonly" mapstructure:"readonly"`
}

// RefConfig controls how reference IDs are extracted from the branch name
// and written as Refs trailers.
type RefConfig struct {
	// MaxIDCount is the maximum number of IDs taken from the branch name.
	MaxIDCount int `yaml:"max_id_count" json:"max_id_count" mapstructure:"max_id_count"`

	// MinIDLength is the shortest digit run accepted as an ID.
	MinIDLength int `yaml:"min_id_length" json:"min_id_length" mapstructure:"min_id_length"`

	// MaxIDLength is the longest digit run accepted as an ID.
	MaxIDLength int `yaml:"max_id_length" json:"max_id_length" mapstructure:"max_id_length"`

	// OneLiner joins all IDs into a single trailer value.
	OneLiner bool `yaml:"one_liner" json:"one_liner" mapstructure:"one_liner"`

	// DefaultRefValue is appended verbatim when the branch has no IDs.
	// Empty means append nothing.
	DefaultRefValue string `yaml:"default_ref_value" json:"default_ref_value" mapstructure:"default_ref_value"`

	// FailIfNoIDs aborts the commit when the branch has no IDs.
	FailIfNoIDs bool `yaml:"fail_if_no_ids" json:"fail_if_no_ids" mapstructure:"fail_if_no_ids"`

	// KeepGoing creates a missing commit message file instead of failing.
	// Some GUI clients run prepare-commit-msg before the file exists.
	KeepGoing bool `yaml:"keep_going" json:"keep_going" mapstructure:"keep_going"`
}

// ReadOnlyConfig controls which tracked files lose their write permission.
type ReadOnlyConfig struct {
	// Patterns are git pathspec globs matched against tracked files.
	Patterns []string `yaml:"patterns" json:"patterns" mapstructure:"patterns"`
}
