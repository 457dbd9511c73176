// Package git provides the git operations quicktree delegates to.
//
// All operations use [os/exec] to call the git CLI directly rather than
// using Go git libraries, so user configuration (hooks, aliases,
// worktree.guessRemote and friends) behaves exactly as on the command line.
//
// # Interface
//
// Commands depend on the [VCS] interface, not on [Client], so tests can
// substitute a fake:
//
//   - [VCS.RepoRoot]: detect the repository (git rev-parse --show-toplevel,
//     or --absolute-git-dir in a bare repository)
//   - [VCS.AddWorktree]: git worktree add <path> -b <branch>
//   - [VCS.ListWorktrees]: git worktree list
//   - [VCS.PruneWorktrees]: git worktree prune
//   - [VCS.RemoveWorktree]: git worktree remove [--force] <path>
//
// # Errors
//
// Failures carry git's stderr verbatim (see package cmd). Two sentinels are
// exported: [ErrGitNotFound] when git is not on PATH and [ErrNotRepository]
// when the working directory is not inside a repository.
package git
