// Package format turns free-text titles into slugs.
//
// A slug is a string over [a-z0-9-] with no leading, trailing or doubled
// hyphen. Slugs are used both as branch names and as the components of
// worktree folder names.
//
// # Sanitization
//
// [Sanitize] applies, in order:
//
//   - trim surrounding whitespace (spaces, tabs, newlines)
//   - lowercase
//   - replace every character outside [a-z0-9-] with "-"
//   - collapse runs of "-" into one
//   - strip a leading or trailing "-"
//
// Sanitize is total: every input, including "", produces a result. Inputs
// without any letters or digits (for example "___") produce "", which callers
// treat as a degenerate name rather than an error.
//
// Examples:
//
//	"Fix/bug#123"       -> "fix-bug-123"
//	"  Feature XYZ  "   -> "feature-xyz"
//	"----hyphens---"    -> "hyphens"
package format
