// Package config handles loading and validation of quicktree configuration.
//
// Configuration is gathered once at startup into a [Config] value. Commands
// never read environment variables, the home directory or the working
// directory themselves.
//
// # Configuration Sources (highest priority first)
//
//   - QUICKTREE_DIR env var: base directory for new worktrees
//   - ~/.config/quicktree/config.toml
//   - Default values (~/worktrees, "sanitize" path policy)
//
// # Key Settings
//
//   - worktree_dir: base directory for worktrees (must be absolute or ~/...)
//   - path_policy: "sanitize" or "trim", see package worktree
//
// The project name is always the base name of the working directory.
//
// # Path Validation
//
// worktree_dir in the config file must be absolute or start with ~ to avoid
// confusion about the working directory. QUICKTREE_DIR may be relative; it
// is resolved against the working directory.
package config
