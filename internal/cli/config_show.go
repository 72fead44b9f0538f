package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/constants"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from global config.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from project config.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// configShowResponse is the JSON result of 'signet config show'.
type configShowResponse struct {
	Settings []configSetting  `json:"settings"`
	Files    configFileStatus `json:"files"`
}

// configSetting is one effective configuration value with its source.
type configSetting struct {
	Key    string       `json:"key"`
	Value  any          `json:"value"`
	Source ConfigSource `json:"source"`
}

// configFileStatus lists the config files consulted and whether they exist.
type configFileStatus struct {
	Global       string `json:"global"`
	GlobalFound  bool   `json:"global_found"`
	Project      string `json:"project"`
	ProjectFound bool   `json:"project_found"`
}

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command, a *app) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect signet configuration",
	}
	configCmd.AddCommand(newConfigShowCmd(a))
	root.AddCommand(configCmd)
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective signet configuration as YAML, with each value
annotated with where it came from:
  - default: Built-in default value
  - global: From ~/.signet/config.yaml
  - project: From .signet/config.yaml
  - env: From a SIGNET_* environment variable

Examples:
  signet config show
  signet config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, a)
		},
	}
}

func runConfigShow(cmd *cobra.Command, a *app) error {
	out := a.output(cmd)

	files := locateConfigFiles()
	sources := configSources(files)

	if out.JSON() {
		return out.Emit(configShowResponse{
			Settings: configSettings(a.cfg, sources),
			Files:    files,
		}, nil)
	}

	return writeAnnotatedYAML(cmd.OutOrStdout(), a.cfg, sources, files)
}

// configSettings flattens cfg into ordered key/value/source entries.
func configSettings(cfg *config.Config, sources func(string) ConfigSource) []configSetting {
	entries := []struct {
		key   string
		value any
	}{
		{"digest.provider", cfg.Digest.Provider},
		{"digest.timeout", cfg.Digest.Timeout.String()},
		{"log.file", cfg.Log.File},
		{"log.max_size_mb", cfg.Log.MaxSizeMB},
		{"log.max_backups", cfg.Log.MaxBackups},
		{"log.max_age_days", cfg.Log.MaxAgeDays},
		{"log.compress", cfg.Log.Compress},
		{"output.format", cfg.Output.Format},
	}

	settings := make([]configSetting, 0, len(entries))
	for _, e := range entries {
		settings = append(settings, configSetting{Key: e.key, Value: e.value, Source: sources(e.key)})
	}
	return settings
}

// writeAnnotatedYAML writes cfg as YAML with a source comment on every value.
func writeAnnotatedYAML(w io.Writer, cfg *config.Config, sources func(string) ConfigSource, files configFileStatus) error {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	annotateSources(&node, "", sources)

	_, _ = fmt.Fprintln(w, "# Effective signet configuration")
	_, _ = fmt.Fprintln(w, "# Sources: env > project > global > default")

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	_, _ = fmt.Fprintf(w, "# global config: %s%s\n", files.Global, notFound(files.GlobalFound))
	_, _ = fmt.Fprintf(w, "# project config: %s%s\n", files.Project, notFound(files.ProjectFound))
	return nil
}

func notFound(found bool) string {
	if found {
		return ""
	}
	return " (not found)"
}

// annotateSources walks a mapping node and sets each scalar's line comment
// to the source of its dotted key.
func annotateSources(n *yaml.Node, prefix string, sources func(string) ConfigSource) {
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		value := n.Content[i+1]
		if value.Kind == yaml.MappingNode {
			annotateSources(value, key, sources)
			continue
		}
		value.LineComment = string(sources(key))
	}
}

// locateConfigFiles returns the global and project config paths and whether they exist.
func locateConfigFiles() configFileStatus {
	var status configFileStatus

	if globalPath, err := config.GlobalConfigPath(); err == nil {
		status.Global = globalPath
		status.GlobalFound = fileExists(globalPath)
	}

	status.Project = config.ProjectConfigPath()
	if abs, err := filepath.Abs(status.Project); err == nil {
		status.Project = abs
	}
	status.ProjectFound = fileExists(status.Project)

	return status
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// configSources returns a lookup of the source for each dotted key.
func configSources(files configFileStatus) func(string) ConfigSource {
	var globalKeys, projectKeys map[string]bool
	if files.GlobalFound {
		globalKeys = loadConfigKeys(files.Global)
	}
	if files.ProjectFound {
		projectKeys = loadConfigKeys(files.Project)
	}

	return func(key string) ConfigSource {
		return determineSource(key, globalKeys, projectKeys)
	}
}

// determineSource applies the precedence order env > project > global > default.
func determineSource(key string, globalKeys, projectKeys map[string]bool) ConfigSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if os.Getenv(envKey) != "" {
		return SourceEnv
	}
	if projectKeys[key] {
		return SourceProject
	}
	if globalKeys[key] {
		return SourceGlobal
	}
	return SourceDefault
}

// loadConfigKeys parses a YAML config file and returns its dotted leaf keys.
// Unreadable files yield no keys; config.Load has already reported them.
func loadConfigKeys(path string) map[string]bool {
	data, err := os.ReadFile(path) //nolint:gosec // Config file path
	if err != nil {
		return nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys
}

func flattenKeys(m map[string]any, prefix string, out map[string]bool) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, out)
			continue
		}
		out[key] = true
	}
}
