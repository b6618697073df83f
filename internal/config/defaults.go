package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/git-util/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Binary: constants.ToolGit,
		},
		Tools: ToolsConfig{
			Sed:           constants.ToolSed,
			Filter:        constants.ToolFilter,
			Column:        constants.ToolColumn,
			DetectTimeout: constants.ToolDetectionTimeout,
		},
		Log: LogConfig{
			OnelineCount: constants.DefaultOnelineCount,
		},
		Policy: PolicyConfig{
			Delimiter: constants.DefaultDisallowedDelimiter,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("git.binary", d.Git.Binary)

	v.SetDefault("tools.sed", d.Tools.Sed)
	v.SetDefault("tools.filter", d.Tools.Filter)
	v.SetDefault("tools.column", d.Tools.Column)
	v.SetDefault("tools.detect_timeout", d.Tools.DetectTimeout.String())

	v.SetDefault("log.oneline_count", d.Log.OnelineCount)

	v.SetDefault("policy.delimiter", d.Policy.Delimiter)
}
