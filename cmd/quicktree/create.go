package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/raphi011/quicktree/internal/config"
	"github.com/raphi011/quicktree/internal/format"
	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/output"
	"github.com/raphi011/quicktree/internal/ui/styles"
	"github.com/raphi011/quicktree/internal/worktree"
)

// create adds a worktree for title on a new branch, or reports the
// existing one if its directory is already there.
func (a *app) create(ctx context.Context, title string, policy worktree.Policy, copyPath bool) error {
	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)

	if _, err := a.vcs.RepoRoot(ctx); err != nil {
		return err
	}

	path := worktree.ComposePath(cfg.WorktreeDir, cfg.ProjectName, title, policy)
	branch := format.SanitizeBranchName(title)
	l.Debug("resolved worktree", "path", path, "branch", branch)
	if !format.IsSlug(branch) {
		l.Printf("%s title %q contains no letters or digits\n", styles.WarningStyle.Render("Warning:"), title)
	}

	if _, err := os.Stat(path); err == nil {
		l.Printf("Found existing worktree: %s\n", path)
		a.printPath(ctx, path, copyPath)
		return nil
	}

	if err := os.MkdirAll(cfg.WorktreeDir, 0755); err != nil {
		return fmt.Errorf("failed to create worktree directory: %w", err)
	}

	if err := a.vcs.AddWorktree(ctx, path, branch); err != nil {
		return err
	}

	l.Printf("%s %s\n", styles.SuccessStyle.Render("Worktree created at:"), path)
	a.printPath(ctx, path, copyPath)
	return nil
}

// printPath writes the worktree path to stdout. Terminals get a
// ready-to-paste cd command, pipes and $(...) get the bare path.
func (a *app) printPath(ctx context.Context, path string, copyPath bool) {
	out := output.FromContext(ctx)
	if out.IsTerminal() {
		out.Println("cd " + path)
	} else {
		out.Println(path)
	}

	if !copyPath {
		return
	}
	clip := a.clip
	if clip == nil {
		clip = clipboard.WriteAll
	}
	l := log.FromContext(ctx)
	if err := clip(path); err != nil {
		l.Printf("%s failed to copy path to clipboard: %v\n", styles.WarningStyle.Render("Warning:"), err)
		return
	}
	l.Println(styles.MutedStyle.Render("Copied path to clipboard"))
}
