// Package worktree composes target directories for new worktrees.
package worktree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/quicktree/internal/format"
)

// Policy selects how project name and title are normalized before they are
// joined into a folder name.
type Policy string

const (
	// PolicySanitize runs both inputs through format.Sanitize.
	PolicySanitize Policy = "sanitize"

	// PolicyTrim only strips surrounding whitespace. Characters that are
	// illegal on the target filesystem are kept as-is.
	PolicyTrim Policy = "trim"
)

// DefaultPolicy is used when no policy is configured
const DefaultPolicy = PolicySanitize

// Policies lists all supported policies
var Policies = []Policy{PolicySanitize, PolicyTrim}

// ParsePolicy converts a config or flag value into a Policy.
// An empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicySanitize:
		return PolicySanitize, nil
	case PolicyTrim:
		return PolicyTrim, nil
	}
	return "", fmt.Errorf("invalid path policy %q: must be %q or %q", s, PolicySanitize, PolicyTrim)
}

// String, Set and Type let *Policy be used directly as a pflag.Value.
func (p Policy) String() string {
	return string(p)
}

func (p *Policy) Set(s string) error {
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *Policy) Type() string {
	return "policy"
}

// apply normalizes a single name component according to the policy
func (p Policy) apply(s string) string {
	if p == PolicyTrim {
		return strings.TrimSpace(s)
	}
	return format.Sanitize(s)
}

// DirName returns the folder name "{project}-{title}" with the policy applied
// to both components.
func DirName(project, title string, p Policy) string {
	return p.apply(project) + "-" + p.apply(title)
}

// ComposePath returns base/{project}-{title}.
// Separator normalization is left to filepath.Join.
func ComposePath(base, project, title string, p Policy) string {
	return filepath.Join(base, DirName(project, title, p))
}
