package main

import (
	"context"
	"strings"

	"github.com/raphi011/quicktree/internal/git"
	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/output"
)

// list passes "git worktree list" through unchanged
func (a *app) list(ctx context.Context) error {
	if _, err := a.vcs.RepoRoot(ctx); err != nil {
		return err
	}

	out, err := a.vcs.ListWorktrees(ctx)
	if err != nil {
		return err
	}

	output.FromContext(ctx).Print(string(out))
	return nil
}

// info prints the folder names of all worktrees joined by commas.
// It is meant for shell prompts and therefore never fails: outside a
// repository, or without git, it prints nothing.
func (a *app) info(ctx context.Context) {
	l := log.FromContext(ctx)

	if _, err := a.vcs.RepoRoot(ctx); err != nil {
		l.Debug("info skipped", "error", err)
		return
	}

	out, err := a.vcs.ListWorktrees(ctx)
	if err != nil {
		l.Debug("info skipped", "error", err)
		return
	}

	names := git.WorktreeDirNames(out)
	if len(names) == 0 {
		return
	}
	output.FromContext(ctx).Println(strings.Join(names, ","))
}
