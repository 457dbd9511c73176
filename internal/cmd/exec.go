package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/quicktree/internal/log"
)

// output runs cmd and returns stdout and stderr separately.
// On failure the error text is the trimmed stderr, if there is any.
func output(cmd *exec.Cmd) ([]byte, []byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, nil, fmt.Errorf("%s", errMsg)
		}
		return nil, nil, err
	}
	return out, stderr.Bytes(), nil
}

// RunContext runs name with args in dir (empty = current directory).
// The command line is logged in verbose mode.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext is like RunContext but returns stdout.
// A cancelled context is reported as ctx.Err() rather than the kill signal.
// In verbose mode, whatever a successful command printed to stderr
// (git's "Preparing worktree ..." progress) is echoed to the log.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	out, errOut, err := output(c)
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err == nil && len(errOut) > 0 && l.IsVerbose() {
		l.Printf("%s", errOut)
	}
	return out, err
}
