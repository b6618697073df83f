// Package hook implements the git hooks that git-util can be installed as.
//
// The pre-commit policy checks, in order, that the commit author is the
// allowed identity and that the staged additions contain none of the
// disallowed strings. Both are configured through the environment.
package hook

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/mrz1836/git-util/internal/constants"
	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/git"
)

const (
	reasonNotFound   = "environment variable not found"
	reasonNotUnicode = "environment variable was not valid unicode"
)

// PolicyConfig is the pre-commit policy as read from the environment.
type PolicyConfig struct {
	AllowedAuthorEmail   string
	DisallowedSubstrings []string
	HasDisallowed        bool
}

// LookupEnvFunc reads an environment variable; os.LookupEnv matches it.
type LookupEnvFunc func(key string) (string, bool)

// DiffSource provides the patch of the staged changes.
// *git.Executor implements it.
type DiffSource interface {
	StagedDiff(ctx context.Context) ([]byte, error)
}

// LineReporter receives the offending line when content is rejected.
type LineReporter interface {
	Line(text string)
}

// PolicyEngine evaluates the pre-commit policy.
type PolicyEngine struct {
	diff      DiffSource
	lookupEnv LookupEnvFunc
	delimiter string
	reporter  LineReporter
}

// Option configures a PolicyEngine.
type Option func(*PolicyEngine)

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(e *PolicyEngine) { e.lookupEnv = fn }
}

// WithDelimiter sets the separator of the disallowed strings list.
func WithDelimiter(d string) Option {
	return func(e *PolicyEngine) {
		if d != "" {
			e.delimiter = d
		}
	}
}

// WithReporter sets where an offending line is written.
func WithReporter(r LineReporter) Option {
	return func(e *PolicyEngine) { e.reporter = r }
}

// NewPolicyEngine creates a PolicyEngine that reads the staged diff from diff.
func NewPolicyEngine(diff DiffSource, opts ...Option) *PolicyEngine {
	e := &PolicyEngine{
		diff:      diff,
		lookupEnv: os.LookupEnv,
		delimiter: constants.DefaultDisallowedDelimiter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run checks the commit author and then the staged additions. The staged
// diff is only requested when a disallowed strings list is configured.
func (e *PolicyEngine) Run(ctx context.Context) (git.Outcome, error) {
	log := zerolog.Ctx(ctx)

	if err := e.checkIdentity(ctx); err != nil {
		return git.Error, err
	}

	cfg, err := e.readDisallowed(ctx)
	if err != nil {
		return git.Error, err
	}
	if !cfg.HasDisallowed {
		log.Debug().Str("variable", constants.EnvDisallowedStrings).Msg("not set, skipping content check")
		return git.Success, nil
	}
	if len(cfg.DisallowedSubstrings) == 0 {
		log.Debug().Msg("disallowed strings list is empty, skipping content check")
		return git.Success, nil
	}

	diff, err := e.diff.StagedDiff(ctx)
	if err != nil {
		return git.Error, err
	}

	line, found, err := FindDisallowed(diff, cfg.DisallowedSubstrings)
	if err != nil {
		return git.Error, err
	}
	if found {
		log.Debug().Msg("disallowed string found in staged additions")
		if e.reporter != nil {
			e.reporter.Line(line)
		}
		return git.Error, &guerrors.DisallowedContentError{Line: line}
	}

	log.Debug().Int("patterns", len(cfg.DisallowedSubstrings)).Msg("content check passed")
	return git.Success, nil
}

func (e *PolicyEngine) checkIdentity(ctx context.Context) error {
	allowed, err := e.require(constants.EnvAllowedEmail)
	if err != nil {
		return err
	}
	actual, err := e.require(constants.EnvGitAuthorEmail)
	if err != nil {
		return err
	}

	if actual != allowed {
		return &guerrors.IdentityMismatchError{
			Variable: constants.EnvGitAuthorEmail,
			Expected: allowed,
			Actual:   actual,
		}
	}
	zerolog.Ctx(ctx).Debug().Str("email", actual).Msg("commit author email allowed")
	return nil
}

func (e *PolicyEngine) readDisallowed(ctx context.Context) (PolicyConfig, error) {
	raw, ok := e.lookupEnv(constants.EnvDisallowedStrings)
	if !ok {
		return PolicyConfig{}, nil
	}
	if !utf8.ValidString(raw) {
		return PolicyConfig{}, &guerrors.PolicyConfigError{Variable: constants.EnvDisallowedStrings, Reason: reasonNotUnicode}
	}

	cfg := PolicyConfig{HasDisallowed: true}
	for _, s := range strings.Split(raw, e.delimiter) {
		if s != "" {
			cfg.DisallowedSubstrings = append(cfg.DisallowedSubstrings, s)
		}
	}
	zerolog.Ctx(ctx).Debug().Int("count", len(cfg.DisallowedSubstrings)).Msg("read disallowed strings")
	return cfg, nil
}

func (e *PolicyEngine) require(key string) (string, error) {
	v, ok := e.lookupEnv(key)
	if !ok {
		return "", &guerrors.PolicyConfigError{Variable: key, Reason: reasonNotFound}
	}
	if !utf8.ValidString(v) {
		return "", &guerrors.PolicyConfigError{Variable: key, Reason: reasonNotUnicode}
	}
	return v, nil
}
