package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/quicktree/internal/config"
	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/ui/styles"
	"github.com/raphi011/quicktree/internal/worktree"
)

// maxSuggestions caps the "did you mean" list on a removal miss
const maxSuggestions = 3

// remove deletes the worktree that title resolves to
func (a *app) remove(ctx context.Context, title string, force bool, policy worktree.Policy) error {
	if strings.TrimSpace(title) == "" {
		return usageErrorf("--rm requires a worktree title")
	}

	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)

	if _, err := a.vcs.RepoRoot(ctx); err != nil {
		return err
	}

	path := worktree.ComposePath(cfg.WorktreeDir, cfg.ProjectName, title, policy)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat worktree: %w", err)
		}
		prefix := worktree.DirName(cfg.ProjectName, "", policy)
		if hints := suggestTitles(cfg.WorktreeDir, prefix, strings.TrimPrefix(filepath.Base(path), prefix)); len(hints) > 0 {
			l.Printf("%s %s\n", styles.MutedStyle.Render("Did you mean:"), strings.Join(hints, ", "))
		}
		return fmt.Errorf("worktree not found: %s", path)
	}

	l.Debug("removing worktree", "path", path, "force", force)
	if err := a.vcs.RemoveWorktree(ctx, path, force); err != nil {
		return err
	}

	l.Printf("%s %s\n", styles.SuccessStyle.Render("Removed worktree:"), path)
	return nil
}

// suggestTitles returns titles of worktrees in dir that belong to the
// project (folder names starting with prefix) and fuzzy-match pattern.
func suggestTitles(dir, prefix, pattern string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var titles []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		if t := strings.TrimPrefix(e.Name(), prefix); t != "" {
			titles = append(titles, t)
		}
	}

	matches := fuzzy.Find(pattern, titles)
	var hints []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		hints = append(hints, m.Str)
	}
	return hints
}
