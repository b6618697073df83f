package git

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/git-util/internal/constants"
)

// StagedDiff returns the patch of everything currently staged, with rename
// detection. Before the first commit, when HEAD does not resolve, the diff is
// taken against the empty tree so that every staged line counts as added.
func (e *Executor) StagedDiff(ctx context.Context) ([]byte, error) {
	base := "HEAD"

	_, code, err := e.Query(ctx, NewInvocation("rev-parse").WithDefaultArgs("--verify", "--quiet", "HEAD"))
	if err != nil {
		return nil, err
	}
	if code != 0 {
		zerolog.Ctx(ctx).Debug().Msg("HEAD does not resolve, diffing against the empty tree")
		base = constants.EmptyTreeHash
	}

	return e.Output(ctx, NewInvocation("diff-index").
		WithDefaultArgs("-p", "-M", "--cached", "--no-ext-diff", "--no-color", base))
}
