package config

import (
	"github.com/mrz1836/git-util/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - git.binary and every tools.* name must not be empty
//   - tools.detect_timeout must be positive
//   - log.oneline_count must be at least 1
//   - policy.delimiter must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateToolsConfig(cfg); err != nil {
		return err
	}

	if cfg.Log.OnelineCount == 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog, "log.oneline_count must be at least 1")
	}

	if cfg.Policy.Delimiter == "" {
		return errors.Wrap(errors.ErrConfigInvalidPolicy, "policy.delimiter must not be empty")
	}

	return nil
}

// validateToolsConfig checks the executable names.
func validateToolsConfig(cfg *Config) error {
	names := []struct {
		key   string
		value string
	}{
		{"git.binary", cfg.Git.Binary},
		{"tools.sed", cfg.Tools.Sed},
		{"tools.filter", cfg.Tools.Filter},
		{"tools.column", cfg.Tools.Column},
	}
	for _, n := range names {
		if n.value == "" {
			return errors.Wrapf(errors.ErrConfigInvalidTools, "%s must not be empty", n.key)
		}
	}

	if cfg.Tools.DetectTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidTools,
			"tools.detect_timeout must be positive, got %s", cfg.Tools.DetectTimeout)
	}
	return nil
}
