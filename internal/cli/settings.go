package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/git-util/internal/config"
	"github.com/mrz1836/git-util/internal/constants"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from the global config file.
	SourceGlobal ConfigSource = "global"
	// SourceEnv indicates the value came from a GIT_UTIL_* environment variable.
	SourceEnv ConfigSource = "env"
)

// AddSettingsCommand adds the settings command.
func AddSettingsCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: "Print the effective configuration as YAML",
		Long: `Print the effective git-util configuration as YAML.

Each value is annotated with where it comes from, highest precedence first:
  env:     a GIT_UTIL_* environment variable (e.g., GIT_UTIL_TOOLS_FILTER)
  global:  ~/.git-util/config.yaml, or $GIT_UTIL_HOME/config.yaml
  default: the built-in value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := GetApp(cmd.Context())
			if app == nil {
				return errNotInitialized
			}
			globalPath, _ := config.GlobalConfigPath()
			return writeSettings(cmd.OutOrStdout(), app.Config, globalPath)
		},
	})
}

// writeSettings encodes cfg with a source comment on every value.
func writeSettings(w io.Writer, cfg *config.Config, globalPath string) error {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	global := loadGlobalKeys(globalPath)
	annotate(&doc, "", func(key string) ConfigSource {
		return determineSource(key, global)
	})

	doc.HeadComment = "effective git-util configuration (env > global > default)"
	doc.FootComment = "global config: " + describePath(globalPath)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return enc.Close()
}

// annotate sets the source of every scalar in a mapping tree as its line comment.
func annotate(n *yaml.Node, prefix string, source func(key string) ConfigSource) {
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
			annotate(value, key, source)
			continue
		}
		value.LineComment = string(source(key))
	}
}

// loadGlobalKeys returns the dotted keys set in the global config file.
// A missing or unreadable file sets nothing.
func loadGlobalKeys(path string) map[string]bool {
	keys := make(map[string]bool)
	if path == "" {
		return keys
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is the git-util config file
	if err != nil {
		return keys
	}

	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return keys
	}
	collectKeys(root, "", keys)
	return keys
}

func collectKeys(m map[string]any, prefix string, keys map[string]bool) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			collectKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

// determineSource determines where a configuration value came from.
func determineSource(key string, global map[string]bool) ConfigSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if os.Getenv(envKey) != "" {
		return SourceEnv
	}
	if global[key] {
		return SourceGlobal
	}
	return SourceDefault
}

func describePath(path string) string {
	if path == "" {
		return "(no home directory)"
	}
	if _, err := os.Stat(path); err != nil {
		return path + " (not found)"
	}
	return path
}
