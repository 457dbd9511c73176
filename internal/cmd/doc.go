// Package cmd provides helpers for executing shell commands with proper error handling.
//
// Failed commands return an error whose text is the trimmed stderr of the
// process, so git's own message reaches the user unchanged:
//
//	out, err := cmd.OutputContext(ctx, "", "git", "worktree", "list")
//	if err != nil {
//	    // err.Error() == "fatal: not a git repository ..."
//	}
//
// The context carries the logger; in verbose mode every command line is
// echoed to stderr together with its duration.
package cmd
