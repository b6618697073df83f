package config

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/git-util/internal/constants"
)

// Pre-compiled regexes for version parsing.
//
//nolint:gochecknoglobals // Package-level compiled regexes
var (
	gitVersionRe     = regexp.MustCompile(`git version (\d+\.\d+(?:\.\d+)?)`)
	genericVersionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)
)

// ToolStatus represents the installation status of an external tool.
type ToolStatus int

const (
	// ToolStatusMissing indicates the tool is not installed.
	ToolStatusMissing ToolStatus = iota

	// ToolStatusInstalled indicates the tool is installed and meets version requirements.
	ToolStatusInstalled

	// ToolStatusOutdated indicates the tool is installed but below the minimum version.
	ToolStatusOutdated
)

// maxVersionSegments is the number of segments in a semantic version (major.minor.patch).
const maxVersionSegments = 3

// String returns a human-readable representation of the tool status.
func (s ToolStatus) String() string {
	switch s {
	case ToolStatusInstalled:
		return "installed"
	case ToolStatusMissing:
		return "missing"
	case ToolStatusOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the status by name.
func (s ToolStatus) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Tool represents an external tool that git-util depends on.
type Tool struct {
	// Role is what git-util uses the tool for (e.g., "git", "filter").
	Role string `yaml:"role"`

	// Command is the configured executable.
	Command string `yaml:"command"`

	// Path is where the executable was found, if anywhere.
	Path string `yaml:"path,omitempty"`

	// MinVersion is the minimum required version, empty when any version works.
	MinVersion string `yaml:"min_version,omitempty"`

	// CurrentVersion is the detected installed version.
	CurrentVersion string `yaml:"current_version,omitempty"`

	// Status is the current installation status.
	Status ToolStatus `yaml:"status"`

	// UsedBy names the verbs that need the tool.
	UsedBy string `yaml:"used_by"`
}

// ToolDetectionResult holds the results of detecting all tools.
type ToolDetectionResult struct {
	// Tools contains the detection result for each tool, in a stable order.
	Tools []Tool `yaml:"tools"`

	// HasMissing indicates if any tool is missing or outdated.
	HasMissing bool `yaml:"has_missing"`
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)

	// Run executes a command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultCommandExecutor implements CommandExecutor using os/exec.
type DefaultCommandExecutor struct{}

// LookPath searches for an executable in the PATH.
func (e *DefaultCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *DefaultCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- name comes from the tools configuration
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// ToolDetector detects the installation status of the configured tools.
type ToolDetector struct {
	executor CommandExecutor
}

// NewToolDetector creates a ToolDetector with the default executor.
func NewToolDetector() *ToolDetector {
	return &ToolDetector{executor: &DefaultCommandExecutor{}}
}

// NewToolDetectorWithExecutor creates a ToolDetector with a custom executor.
func NewToolDetectorWithExecutor(executor CommandExecutor) *ToolDetector {
	return &ToolDetector{executor: executor}
}

// toolConfig holds the configuration for detecting a specific tool.
type toolConfig struct {
	role        string
	command     string
	versionFlag string // empty: presence is enough
	minVersion  string
	usedBy      string
	parseFunc   func(output string) string
}

// getToolConfigs returns the detection configuration for every tool cfg names.
func getToolConfigs(cfg *Config) []toolConfig {
	return []toolConfig{
		{
			role:        "git",
			command:     cfg.Git.Binary,
			versionFlag: constants.VersionFlagStandard,
			minVersion:  constants.MinVersionGit,
			usedBy:      "every verb",
			parseFunc:   parseGitVersion,
		},
		{
			role:    "sed",
			command: cfg.Tools.Sed,
			usedBy:  "alias",
		},
		{
			role:        "filter",
			command:     cfg.Tools.Filter,
			versionFlag: constants.VersionFlagStandard,
			usedBy:      "alias, conf",
			parseFunc:   parseGenericVersion,
		},
		{
			role:    "column",
			command: cfg.Tools.Column,
			usedBy:  "alias, conf",
		},
	}
}

// Detect checks all configured tools and returns their status.
func (d *ToolDetector) Detect(ctx context.Context, cfg *Config) (*ToolDetectionResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	timeout := cfg.Tools.DetectTimeout
	if timeout <= 0 {
		timeout = constants.ToolDetectionTimeout
	}
	detectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	configs := getToolConfigs(cfg)
	result := &ToolDetectionResult{Tools: make([]Tool, len(configs))}

	g, gCtx := errgroup.WithContext(detectCtx)
	for i, tc := range configs {
		g.Go(func() error {
			result.Tools[i] = d.detectTool(gCtx, tc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to detect tools: %w", err)
	}

	for _, tool := range result.Tools {
		if tool.Status != ToolStatusInstalled {
			result.HasMissing = true
			break
		}
	}

	return result, nil
}

// detectTool detects a single tool's status.
func (d *ToolDetector) detectTool(ctx context.Context, tc toolConfig) Tool {
	tool := Tool{
		Role:       tc.role,
		Command:    tc.command,
		MinVersion: tc.minVersion,
		UsedBy:     tc.usedBy,
		Status:     ToolStatusMissing,
	}

	path, err := d.executor.LookPath(tc.command)
	if err != nil {
		return tool
	}
	tool.Path = path
	tool.Status = ToolStatusInstalled

	if tc.versionFlag == "" {
		return tool
	}

	output, err := d.executor.Run(ctx, tc.command, tc.versionFlag)
	if err != nil {
		// Installed, but the version probe failed.
		tool.CurrentVersion = "unknown"
		return tool
	}

	tool.CurrentVersion = tc.parseFunc(output)
	if tool.CurrentVersion == "" {
		tool.CurrentVersion = "unknown"
		return tool
	}

	if tc.minVersion != "" && CompareVersions(tool.CurrentVersion, tc.minVersion) < 0 {
		tool.Status = ToolStatusOutdated
	}
	return tool
}

// parseGitVersion parses "git version 2.39.0" → "2.39.0"
func parseGitVersion(output string) string {
	if matches := gitVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// parseGenericVersion extracts a version number from generic output,
// e.g. "ripgrep 14.1.0" or "grep (GNU grep) 3.11".
func parseGenericVersion(output string) string {
	if matches := genericVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CompareVersions compares two semantic versions.
// Returns:
//
//	-1 if current < required
//	 0 if current == required
//	 1 if current > required
func CompareVersions(current, required string) int {
	current = strings.TrimPrefix(current, "v")
	required = strings.TrimPrefix(required, "v")

	currentParts := parseVersionParts(current)
	requiredParts := parseVersionParts(required)

	for i := 0; i < maxVersionSegments; i++ {
		if currentParts[i] < requiredParts[i] {
			return -1
		}
		if currentParts[i] > requiredParts[i] {
			return 1
		}
	}

	return 0
}

// parseVersionParts parses a version string into [major, minor, patch].
func parseVersionParts(version string) [maxVersionSegments]int {
	var parts [maxVersionSegments]int
	segments := strings.Split(version, ".")

	for i := 0; i < len(segments) && i < maxVersionSegments; i++ {
		// Numeric prefix only, so "2.39.0.windows" parses.
		numStr := segments[i]
		for j, c := range numStr {
			if c < '0' || c > '9' {
				numStr = numStr[:j]
				break
			}
		}
		if numStr != "" {
			parts[i], _ = strconv.Atoi(numStr)
		}
	}

	return parts
}

// FormatMissingTools describes the tools that are missing or outdated.
func FormatMissingTools(result *ToolDetectionResult) string {
	var sb strings.Builder
	for _, tool := range result.Tools {
		switch tool.Status {
		case ToolStatusMissing:
			fmt.Fprintf(&sb, "  %s (%s): not found in PATH, needed by %s\n", tool.Role, tool.Command, tool.UsedBy)
		case ToolStatusOutdated:
			fmt.Fprintf(&sb, "  %s (%s): have %s, need %s\n", tool.Role, tool.Command, tool.CurrentVersion, tool.MinVersion)
		case ToolStatusInstalled:
		}
	}
	return sb.String()
}
