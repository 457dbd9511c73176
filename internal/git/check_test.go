package git

import (
	"errors"
	"testing"
)

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	// git must be available in CI and dev environments
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()
	if errors.Is(ErrGitNotFound, ErrNotRepository) {
		t.Error("ErrGitNotFound should not match ErrNotRepository")
	}
}
