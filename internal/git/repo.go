package git

import (
	"context"
	"strings"

	"github.com/raphi011/quicktree/internal/log"
)

// RepoRoot returns the repository top-level directory via
// "git rev-parse --show-toplevel". Bare repositories have no work tree;
// for them the absolute git directory is returned instead, since
// worktrees can still be added from there.
// Returns ErrGitNotFound if git is not installed.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	if err := CheckGit(); err != nil {
		return "", err
	}

	output, err := outputGit(ctx, c.Dir, "rev-parse", "--show-toplevel")
	if err == nil {
		if root := strings.TrimSpace(string(output)); root != "" {
			return root, nil
		}
	}

	output, gitDirErr := outputGit(ctx, c.Dir, "rev-parse", "--absolute-git-dir")
	if gitDirErr != nil {
		log.FromContext(ctx).Debug("repository detection failed", "dir", c.Dir, "error", gitDirErr)
		return "", ErrNotRepository
	}

	gitDir := strings.TrimSpace(string(output))
	if gitDir == "" {
		return "", ErrNotRepository
	}
	log.FromContext(ctx).Debug("no work tree, using git dir", "git_dir", gitDir)
	return gitDir, nil
}
