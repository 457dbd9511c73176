package git

import "context"

// VCS is the set of version-control operations quicktree delegates to.
// Each method maps to exactly one git invocation.
type VCS interface {
	// RepoRoot returns the top-level directory of the current repository,
	// or ErrNotRepository.
	RepoRoot(ctx context.Context) (string, error)

	// AddWorktree creates a worktree at path on a new branch.
	AddWorktree(ctx context.Context, path, branch string) error

	// ListWorktrees returns the raw output of "git worktree list".
	ListWorktrees(ctx context.Context) ([]byte, error)

	// PruneWorktrees removes administrative data of vanished worktrees.
	PruneWorktrees(ctx context.Context) error

	// RemoveWorktree removes the worktree at path.
	RemoveWorktree(ctx context.Context, path string, force bool) error
}

// Client implements VCS by running the git binary.
type Client struct {
	// Dir is passed as "git -C <dir>"; empty means the process working directory.
	Dir string
}

// NewClient returns a Client operating on the repository containing dir.
func NewClient(dir string) *Client {
	return &Client{Dir: dir}
}

var _ VCS = (*Client)(nil)
