package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/git-util/internal/config"
	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/git"
)

// AddDoctorCommand adds the doctor command.
func AddDoctorCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check that git and the listing tools are installed",
		Long: `Look up git, sed, the filter and column on PATH and report their versions.

git must be at least ` + constants.MinVersionGit + `, the first release with git restore.
The command fails when a tool is missing or too old.`,
		Args: cobra.NoArgs,
		RunE: runVerb(runDoctor),
	})
}

func runDoctor(ctx context.Context, app *App, _ []string) (git.Outcome, error) {
	result, err := app.Tools.Detect(ctx, app.Config)
	if err != nil {
		return git.Error, err
	}

	enc := yaml.NewEncoder(app.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return git.Error, fmt.Errorf("failed to write tool report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return git.Error, err
	}

	if !result.HasMissing {
		return git.Success, nil
	}

	app.Printer.Error("some tools are missing or outdated", "")
	for _, line := range strings.Split(strings.TrimRight(config.FormatMissingTools(result), "\n"), "\n") {
		app.Printer.Line(line)
	}
	return git.Error, nil
}
