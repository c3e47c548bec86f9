package provision

import (
	"fmt"
	"os"

	"nvim-bootstrap/internal/config"
)

// setupDistribution places the pinned editor distribution at its target
// path. An existing tree is deleted first and the distribution is
// shallow-cloned fresh — delete-then-clone, never a merge and never a skip,
// so the result is identical no matter what was there before. Any custom
// configuration the next stage places on top is lost here and re-created.
func setupDistribution(ctx *Context) (bool, error) {
	dist := ctx.Cfg.Distribution

	dest, err := config.ExpandHome(dist.Path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(dest); err == nil {
		ctx.Log.Info("Removing existing installation at %s...", dest)
		if err := os.RemoveAll(dest); err != nil {
			return false, fmt.Errorf("failed to remove %s: %w", dest, err)
		}
	}

	ctx.Log.Info("Cloning %s (%s) into %s...", dist.Repo, dist.Ref, dest)
	clone := fmt.Sprintf("git clone --depth 1 -b %s %s %s", dist.Ref, dist.Repo, dest)
	if err := ctx.Runner.Run(clone); err != nil {
		return false, err
	}
	return false, nil
}
