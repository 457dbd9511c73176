package main

import (
	"context"

	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/ui/styles"
)

func (a *app) prune(ctx context.Context) error {
	if _, err := a.vcs.RepoRoot(ctx); err != nil {
		return err
	}

	if err := a.vcs.PruneWorktrees(ctx); err != nil {
		return err
	}

	log.FromContext(ctx).Println(styles.SuccessStyle.Render("Pruned stale worktree references"))
	return nil
}
