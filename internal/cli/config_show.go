package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/githooks/internal/config"
	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/git"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (text, yaml or json).
	OutputFormat string
}

// newConfigCmd creates the 'config' parent command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Inspect githooks configuration",
	}
}

// AddConfigCommand adds the config command and its subcommands to the root command.
func AddConfigCommand(root *cobra.Command) {
	configCmd := newConfigCmd()
	AddConfigShowCommand(configCmd)
	root.AddCommand(configCmd)
}

// newConfigShowCmd creates the 'config show' subcommand for displaying configuration.
func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the configuration the hooks would use here, with source annotations.

Each value shows where it comes from:
  - default: Built-in default value
  - project: From .githooks.yaml at the repository root
  - env: From its environment variable

Command-line flags are not part of this view since they only apply to a
single hook invocation.

Examples:
  githooks config show              # Display config as styled text
  githooks config show --output yaml
  githooks config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), git.NewRunner(""), flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", OutputText, "output format (text, yaml or json)")

	return cmd
}

// AddConfigShowCommand adds the show subcommand to the config command.
func AddConfigShowCommand(configCmd *cobra.Command) {
	flags := &ConfigShowFlags{}
	configCmd.AddCommand(newConfigShowCmd(flags))
}

// ConfigValueWithSource represents a configuration value with its source.
type ConfigValueWithSource struct {
	Value  any           `json:"value" yaml:"value"`
	Source config.Source `json:"source" yaml:"source"`
	Env    string        `json:"env,omitempty" yaml:"env,omitempty"`
}

// AnnotatedConfig represents configuration with source annotations.
type AnnotatedConfig struct {
	RedmineRef map[string]ConfigValueWithSource `json:"redmine_ref" yaml:"redmine_ref"`
	ReadOnly   map[string]ConfigValueWithSource `json:"readonly" yaml:"readonly"`
}

// configShowStyles contains styling for the config show command output.
type configShowStyles struct {
	header    lipgloss.Style
	section   lipgloss.Style
	key       lipgloss.Style
	value     lipgloss.Style
	sourceEnv lipgloss.Style
	sourcePrj lipgloss.Style
	sourceDef lipgloss.Style
	dim       lipgloss.Style
}

// newConfigShowStyles creates styles for w. Colors are dropped when w is
// not a terminal.
func newConfigShowStyles(w io.Writer) *configShowStyles {
	r := lipgloss.NewRenderer(w)
	return &configShowStyles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00D7FF")),
		section: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),
		key: r.NewStyle().
			Foreground(lipgloss.Color("#00D7FF")),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		sourceEnv: r.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")), // Red for env (highest precedence)
		sourcePrj: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")), // Yellow for project
		sourceDef: r.NewStyle().
			Foreground(lipgloss.Color("#666666")), // Gray for default
		dim: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, runner git.Runner, flags *ConfigShowFlags) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	format := strings.ToLower(flags.OutputFormat)
	if !IsValidOutputFormat(format) {
		return fmt.Errorf("%w: %s (use %s)", errors.ErrUnsupportedOutputFormat, flags.OutputFormat, strings.Join(ValidOutputFormats(), ", "))
	}

	cfg, loader, err := loadConfig(ctx, runner, nil)
	if err != nil {
		return err
	}

	annotated := buildAnnotatedConfig(cfg, loader)

	switch format {
	case OutputJSON:
		return outputJSON(w, annotated)
	case OutputYAML:
		return outputYAML(w, annotated)
	default:
		projectPath := ""
		if top, err := runner.TopLevel(ctx); err == nil {
			projectPath = config.ProjectConfigPath(top)
		}
		return outputText(w, annotated, projectPath)
	}
}

// buildAnnotatedConfig pairs every configuration value with its source.
func buildAnnotatedConfig(cfg *config.Config, loader *config.Loader) *AnnotatedConfig {
	values := map[string]any{
		config.KeyMaxIDCount:      cfg.RedmineRef.MaxIDCount,
		config.KeyMinIDLength:     cfg.RedmineRef.MinIDLength,
		config.KeyMaxIDLength:     cfg.RedmineRef.MaxIDLength,
		config.KeyOneLiner:        cfg.RedmineRef.OneLiner,
		config.KeyDefaultRefValue: cfg.RedmineRef.DefaultRefValue,
		config.KeyFailIfNoIDs:     cfg.RedmineRef.FailIfNoIDs,
		config.KeyKeepGoing:       cfg.RedmineRef.KeepGoing,
	}

	annotated := &AnnotatedConfig{
		RedmineRef: make(map[string]ConfigValueWithSource, len(values)),
		ReadOnly:   make(map[string]ConfigValueWithSource, 1),
	}
	for _, key := range config.RefKeys {
		annotated.RedmineRef[fieldName(key)] = annotate(loader, key, values[key])
	}

	patterns := cfg.ReadOnly.Patterns
	if patterns == nil {
		patterns = []string{}
	}
	annotated.ReadOnly[fieldName(config.KeyReadOnlyPattern)] = annotate(loader, config.KeyReadOnlyPattern, patterns)

	return annotated
}

func annotate(loader *config.Loader, key string, value any) ConfigValueWithSource {
	return ConfigValueWithSource{
		Value:  value,
		Source: loader.Source(key),
		Env:    config.EnvName(key),
	}
}

// fieldName strips the section from a configuration key.
func fieldName(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

// outputJSON outputs the configuration in JSON format.
func outputJSON(w io.Writer, annotated *AnnotatedConfig) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(annotated)
}

// outputYAML outputs the configuration in YAML format.
func outputYAML(w io.Writer, annotated *AnnotatedConfig) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(annotated); err != nil {
		return err
	}
	return encoder.Close()
}

// outputText outputs the configuration as styled text, in key order.
func outputText(w io.Writer, annotated *AnnotatedConfig, projectPath string) error {
	styles := newConfigShowStyles(w)

	_, _ = fmt.Fprintln(w, styles.header.Render("Effective githooks configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render(strings.Repeat("─", 50)))
	_, _ = fmt.Fprintln(w, styles.dim.Render("Sources: ")+
		styles.sourceEnv.Render("env")+" > "+
		styles.sourcePrj.Render("project")+" > "+
		styles.sourceDef.Render("default"))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, styles.section.Render("redmine_ref:"))
	for _, key := range config.RefKeys {
		name := fieldName(key)
		printConfigValue(w, styles, "  "+name, annotated.RedmineRef[name])
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, styles.section.Render("readonly:"))
	name := fieldName(config.KeyReadOnlyPattern)
	printConfigValue(w, styles, "  "+name, annotated.ReadOnly[name])
	_, _ = fmt.Fprintln(w)

	switch {
	case projectPath == "":
		_, _ = fmt.Fprintln(w, styles.dim.Render("Project config: (not in a git work tree)"))
	case annotatedFromProject(annotated):
		_, _ = fmt.Fprintln(w, styles.dim.Render("Project config: ")+styles.sourcePrj.Render(projectPath))
	default:
		_, _ = fmt.Fprintln(w, styles.dim.Render("Project config: "+projectPath))
	}

	return nil
}

// annotatedFromProject reports whether any value comes from the project file.
func annotatedFromProject(annotated *AnnotatedConfig) bool {
	for _, section := range []map[string]ConfigValueWithSource{annotated.RedmineRef, annotated.ReadOnly} {
		for _, vs := range section {
			if vs.Source == config.SourceProject {
				return true
			}
		}
	}
	return false
}

// printConfigValue prints a configuration value with its source annotation.
func printConfigValue(w io.Writer, styles *configShowStyles, key string, vs ConfigValueWithSource) {
	source := string(vs.Source)
	if vs.Env != "" {
		source += ", " + vs.Env
	}

	_, _ = fmt.Fprintf(w, "%s: %s  %s\n",
		styles.key.Render(key),
		styles.value.Render(formatConfigValue(vs.Value)),
		getSourceStyle(vs.Source, styles).Render("# "+source))
}

// formatConfigValue converts a configuration value to a displayable string.
func formatConfigValue(value any) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "(not set)"
		}
		return v
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%s]", strings.Join(v, ", "))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// getSourceStyle returns the appropriate style for a config source.
func getSourceStyle(source config.Source, styles *configShowStyles) lipgloss.Style {
	switch source {
	case config.SourceEnv, config.SourceFlag:
		return styles.sourceEnv
	case config.SourceProject:
		return styles.sourcePrj
	case config.SourceDefault:
		return styles.sourceDef
	default:
		return styles.sourceDef
	}
}
