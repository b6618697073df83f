// Package config provides configuration management for git-util with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (GIT_UTIL_* prefix)
//  2. Global config (~/.git-util/config.yaml, or $GIT_UTIL_HOME/config.yaml)
//  3. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for git-util.
type Config struct {
	// Git contains settings for invoking git itself.
	Git GitConfig `yaml:"git" mapstructure:"git"`

	// Tools names the external filters used by the alias and conf listings.
	Tools ToolsConfig `yaml:"tools" mapstructure:"tools"`

	// Log contains settings for the log verbs.
	Log LogConfig `yaml:"log" mapstructure:"log"`

	// Policy contains settings for the pre-commit policy.
	Policy PolicyConfig `yaml:"policy" mapstructure:"policy"`
}

// GitConfig contains settings for git invocations.
type GitConfig struct {
	// Binary is the git executable, looked up in PATH unless it contains a separator.
	// Default: "git"
	Binary string `yaml:"binary" mapstructure:"binary"`
}

// ToolsConfig names the executables of the listing pipelines.
type ToolsConfig struct {
	// Sed is the stream editor used to rewrite listing lines.
	// Default: "sed"
	Sed string `yaml:"sed" mapstructure:"sed"`

	// Filter is the line filter. It must accept --fixed-strings,
	// --ignore-case and --invert-match, as rg and grep do.
	// Default: "rg"
	Filter string `yaml:"filter" mapstructure:"filter"`

	// Column formats listings into a table.
	// Default: "column"
	Column string `yaml:"column" mapstructure:"column"`

	// DetectTimeout bounds how long the doctor command waits for version output.
	// Default: 5s
	DetectTimeout time.Duration `yaml:"detect_timeout" mapstructure:"detect_timeout"`
}

// LogConfig contains settings for the log verbs.
type LogConfig struct {
	// OnelineCount is the number of commits the l verb shows by default.
	// Default: 25
	OnelineCount uint16 `yaml:"oneline_count" mapstructure:"oneline_count"`
}

// PolicyConfig contains settings for the pre-commit policy. The policy
// values themselves come from GIT_UTIL_USER_EMAIL and
// GIT_UTIL_DISALLOWED_STRINGS at hook time.
type PolicyConfig struct {
	// Delimiter separates entries of GIT_UTIL_DISALLOWED_STRINGS.
	// Default: "|"
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}
