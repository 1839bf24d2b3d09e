package config

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/shlex"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/errors"
)

// Viper keys. They match the YAML tag paths of Config.
const (
	KeyMaxIDCount      = "redmine_ref.max_id_count"
	KeyMinIDLength     = "redmine_ref.min_id_length"
	KeyMaxIDLength     = "redmine_ref.max_id_length"
	KeyOneLiner        = "redmine_ref.one_liner"
	KeyDefaultRefValue = "redmine_ref.default_ref_value"
	KeyFailIfNoIDs     = "redmine_ref.fail_if_no_ids"
	KeyKeepGoing       = "redmine_ref.keep_going"
	KeyReadOnlyPattern = "readonly.patterns"
)

// RefKeys lists the redmine-ref keys in display order.
//
//nolint:gochecknoglobals // Static key list
var RefKeys = []string{
	KeyMaxIDCount,
	KeyMinIDLength,
	KeyMaxIDLength,
	KeyOneLiner,
	KeyDefaultRefValue,
	KeyFailIfNoIDs,
	KeyKeepGoing,
}

// envBindings maps viper keys to the environment variables that override them.
// The variables are unprefixed to stay compatible with existing hook setups.
//
//nolint:gochecknoglobals // Static binding table
var envBindings = map[string]string{
	KeyMaxIDCount:      constants.EnvMaxIDCount,
	KeyMinIDLength:     constants.EnvMinIDLength,
	KeyMaxIDLength:     constants.EnvMaxIDLength,
	KeyOneLiner:        constants.EnvOneLiner,
	KeyDefaultRefValue: constants.EnvDefaultRefValue,
	KeyFailIfNoIDs:     constants.EnvFailIfNoIDs,
	KeyKeepGoing:       constants.EnvKeepGoing,
	KeyReadOnlyPattern: constants.EnvReadOnlyPatterns,
}

// Source represents where a configuration value came from.
type Source string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault Source = "default"
	// SourceProject indicates the value came from the project config file.
	SourceProject Source = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
)

// Loader resolves configuration from defaults, the project config file,
// environment variables and bound flags.
type Loader struct {
	v     *viper.Viper
	flags map[string]*pflag.Flag
}

// NewLoader creates a Loader with defaults and environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		// BindEnv only fails when called without a key
		_ = v.BindEnv(key, env)
	}
	return &Loader{v: v, flags: make(map[string]*pflag.Flag)}
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyMaxIDCount, d.RedmineRef.MaxIDCount)
	v.SetDefault(KeyMinIDLength, d.RedmineRef.MinIDLength)
	v.SetDefault(KeyMaxIDLength, d.RedmineRef.MaxIDLength)
	v.SetDefault(KeyOneLiner, d.RedmineRef.OneLiner)
	v.SetDefault(KeyDefaultRefValue, d.RedmineRef.DefaultRefValue)
	v.SetDefault(KeyFailIfNoIDs, d.RedmineRef.FailIfNoIDs)
	v.SetDefault(KeyKeepGoing, d.RedmineRef.KeepGoing)
	v.SetDefault(KeyReadOnlyPattern, d.ReadOnly.Patterns)
}

// BindFlag binds a flag to a configuration key. A flag only takes effect
// when it was given on the command line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "no flag to bind for %s", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return errors.Wrapf(err, "failed to bind flag %s", flag.Name)
	}
	l.flags[key] = flag
	return nil
}

// ReadProjectConfig merges the project config file at path.
// A missing file is not an error.
func (l *Loader) ReadProjectConfig(ctx context.Context, path string) error {
	if path == "" || !fileExists(path) {
		return nil
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read project config %s: %w: %w", path, errors.ErrInvalidConfig, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("project config loaded")
	return nil
}

// Load unmarshals the merged configuration. The redmine-ref section is validated.
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg, decoderOption()); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w: %w", errors.ErrInvalidConfig, err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("max_id_count", cfg.RedmineRef.MaxIDCount).
		Int("min_id_length", cfg.RedmineRef.MinIDLength).
		Int("max_id_length", cfg.RedmineRef.MaxIDLength).
		Bool("one_liner", cfg.RedmineRef.OneLiner).
		Str("default_ref_value", cfg.RedmineRef.DefaultRefValue).
		Bool("fail_if_no_ids", cfg.RedmineRef.FailIfNoIDs).
		Bool("keep_going", cfg.RedmineRef.KeepGoing).
		Strs("readonly_patterns", cfg.ReadOnly.Patterns).
		Msg("configuration resolved")

	if err := cfg.RedmineRef.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// LoadReadOnly decodes only the readonly section, so a broken redmine-ref
// setting does not cost the readonly hook its patterns.
func (l *Loader) LoadReadOnly(ctx context.Context) (ReadOnlyConfig, error) {
	var ro ReadOnlyConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(shellWordsHook),
		WeaklyTypedInput: true,
		Result:           &ro,
	})
	if err != nil {
		return ro, errors.Wrap(err, "failed to create decoder")
	}

	raw := map[string]any{"patterns": l.v.Get(KeyReadOnlyPattern)}
	if err := dec.Decode(raw); err != nil {
		return ReadOnlyConfig{}, fmt.Errorf("failed to decode readonly configuration: %w: %w", errors.ErrInvalidConfig, err)
	}

	zerolog.Ctx(ctx).Debug().Strs("readonly_patterns", ro.Patterns).Msg("readonly configuration resolved")
	return ro, nil
}

// Source reports which layer supplies the value for key.
func (l *Loader) Source(key string) Source {
	if f, ok := l.flags[key]; ok && f.Changed {
		return SourceFlag
	}
	if env, ok := envBindings[key]; ok && os.Getenv(env) != "" {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceProject
	}
	return SourceDefault
}

// EnvName returns the environment variable bound to key, if any.
func EnvName(key string) string {
	return envBindings[key]
}

// decoderOption returns the decoder options for Viper unmarshal.
// Environment variables arrive as strings, so they need stricter handling
// than mapstructure's weak typing provides.
func decoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			strictIntHook,
			presenceBoolHook,
			shellWordsHook,
		),
	)
}

// strictIntHook parses strings as base-10 integers.
// mapstructure's weak typing would accept "0x10" or "010".
func strictIntHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a base-10 integer: %w", s, errors.ErrInvalidConfig)
	}
	return n, nil
}

// presenceBoolHook treats any non-empty string as true, matching the
// convention that a boolean environment variable is set when non-empty.
func presenceBoolHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return data.(string) != "", nil
}

// shellWordsHook splits a string into a slice using shell quoting rules.
func shellWordsHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	words, err := shlex.Split(data.(string))
	if err != nil {
		return nil, fmt.Errorf("cannot split %q: %w: %w", data, errors.ErrInvalidConfig, err)
	}
	return words, nil
}
