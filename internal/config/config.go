package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/quicktree/internal/worktree"
)

// EnvWorktreeDir overrides the base directory for new worktrees
const EnvWorktreeDir = "QUICKTREE_DIR"

// DefaultWorktreeSubdir is the folder below $HOME used when nothing is configured
const DefaultWorktreeSubdir = "worktrees"

// Config holds everything quicktree reads from its environment.
// It is populated once at startup; commands only read it.
type Config struct {
	WorktreeDir string          // base directory for new worktrees (absolute)
	HomeDir     string          // user's home directory
	WorkDir     string          // directory quicktree was started in
	ProjectName string          // base name of WorkDir
	PathPolicy  worktree.Policy // how project and title become a folder name
	File        string          // config file that was read, empty if none
}

// fileConfig mirrors config.toml
type fileConfig struct {
	WorktreeDir string `toml:"worktree_dir"`
	PathPolicy  string `toml:"path_policy"`
}

// Source is the ambient input Load reads from.
// Tests construct it directly instead of touching the real environment.
type Source struct {
	Getenv  func(string) string
	HomeDir string
	WorkDir string
}

// Default returns the configuration used without config file or env vars
func Default(homeDir, workDir string) Config {
	return Config{
		WorktreeDir: filepath.Join(homeDir, DefaultWorktreeSubdir),
		HomeDir:     homeDir,
		WorkDir:     workDir,
		ProjectName: filepath.Base(workDir),
		PathPolicy:  worktree.DefaultPolicy,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands a leading ~ to homeDir
func expandPath(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if len(path) >= 2 && path[:2] == "~/" {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Path returns the config file location below homeDir
func Path(homeDir string) string {
	return filepath.Join(homeDir, ".config", "quicktree", "config.toml")
}

// Load reads the real environment: $HOME, the working directory,
// QUICKTREE_DIR and ~/.config/quicktree/config.toml.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("determine home directory: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadFrom(Source{Getenv: os.Getenv, HomeDir: home, WorkDir: wd})
}

// LoadFrom builds the configuration from src.
//
// Precedence for the worktree directory: QUICKTREE_DIR, then worktree_dir
// from the config file, then ~/worktrees. A missing config file is not an
// error. An unreadable or invalid file is reported, but the returned Config
// is still usable (defaults plus environment).
func LoadFrom(src Source) (Config, error) {
	cfg := Default(src.HomeDir, src.WorkDir)

	fileErr := applyFile(&cfg, Path(src.HomeDir), src.HomeDir)

	if src.Getenv != nil {
		if dir := src.Getenv(EnvWorktreeDir); dir != "" {
			dir = expandPath(dir, src.HomeDir)
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(src.WorkDir, dir)
			}
			cfg.WorktreeDir = filepath.Clean(dir)
		}
	}

	return cfg, fileErr
}

// applyFile merges the config file at path into cfg.
// cfg is left untouched if the file is invalid.
func applyFile(cfg *Config, path, homeDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := ValidatePath(fc.WorktreeDir, "worktree_dir"); err != nil {
		return err
	}
	policy, err := worktree.ParsePolicy(fc.PathPolicy)
	if err != nil {
		return fmt.Errorf("path_policy: %w", err)
	}

	if fc.WorktreeDir != "" {
		cfg.WorktreeDir = filepath.Clean(expandPath(fc.WorktreeDir, homeDir))
	}
	cfg.PathPolicy = policy
	cfg.File = path
	return nil
}

type ctxKey struct{}

// WithConfig attaches the configuration to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the configuration stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

const defaultConfig = `# quicktree configuration

# Base directory for new worktrees
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# The QUICKTREE_DIR environment variable takes precedence over this setting.
# worktree_dir = "~/worktrees"

# How the project name and title become the worktree folder name
#   "sanitize" - lowercase, everything outside [a-z0-9-] becomes "-" (default)
#   "trim"     - only strip surrounding whitespace
# path_policy = "sanitize"
`

// Init writes the default config file to path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
