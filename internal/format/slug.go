package format

import (
	"regexp"
	"strings"
)

var (
	// nonSlugChars matches anything that may not appear in a slug
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)

	// hyphenRuns matches two or more consecutive hyphens
	hyphenRuns = regexp.MustCompile(`-{2,}`)

	// slugPattern matches a non-empty, fully normalized slug
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Sanitize converts arbitrary text into a slug safe for branch and folder names.
// The order of steps matters: case folding happens before substitution so
// uppercase letters survive as their lowercase form.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeBranchName returns the branch name for a worktree title.
func SanitizeBranchName(title string) string {
	return Sanitize(title)
}

// IsSlug reports whether s is already a non-empty normalized slug,
// i.e. Sanitize(s) == s and s != "".
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}
