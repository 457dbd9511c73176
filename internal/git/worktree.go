package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// AddWorktree runs "git worktree add <path> -b <branch>".
func (c *Client) AddWorktree(ctx context.Context, path, branch string) error {
	if err := runGit(ctx, c.Dir, "worktree", "add", path, "-b", branch); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}
	return nil
}

// ListWorktrees runs "git worktree list" and returns its stdout unchanged.
func (c *Client) ListWorktrees(ctx context.Context) ([]byte, error) {
	return outputGit(ctx, c.Dir, "worktree", "list")
}

// PruneWorktrees runs "git worktree prune".
func (c *Client) PruneWorktrees(ctx context.Context) error {
	return runGit(ctx, c.Dir, "worktree", "prune")
}

// RemoveWorktree runs "git worktree remove [--force] <path>".
func (c *Client) RemoveWorktree(ctx context.Context, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return runGit(ctx, c.Dir, args...)
}

// WorktreePaths returns the path of every worktree in "git worktree list"
// output, in listing order:
//
//	/home/me/src/proj          1a2b3c4 [main]
//	/home/me/worktrees/proj-x  5d6e7f8 [feature-x]
//	/home/me/src/bare.git      (bare)
//
// The path is the first whitespace-delimited token of each line, so paths
// containing spaces are truncated. Blank lines are skipped.
func WorktreePaths(output []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			paths = append(paths, fields[0])
		}
	}
	return paths
}

// WorktreeDirNames returns the base directory name of every listed worktree,
// in listing order.
func WorktreeDirNames(output []byte) []string {
	paths := WorktreePaths(output)
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names
}
