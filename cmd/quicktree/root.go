package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/raphi011/quicktree/internal/config"
	"github.com/raphi011/quicktree/internal/git"
	"github.com/raphi011/quicktree/internal/log"
	"github.com/raphi011/quicktree/internal/output"
	"github.com/raphi011/quicktree/internal/ui/styles"
	"github.com/raphi011/quicktree/internal/worktree"
)

// app holds the dependencies shared by all actions
type app struct {
	cfg    config.Config
	cfgErr error // non-fatal config file problem, reported as a warning
	vcs    git.VCS
	stdout io.Writer
	stderr io.Writer

	// clip copies text to the system clipboard; nil means clipboard.WriteAll
	clip func(string) error
}

// options are the parsed command-line flags
type options struct {
	// Global flags
	verbose bool
	quiet   bool

	// Actions
	list       bool
	info       bool
	prune      bool
	remove     string
	initConfig bool

	// Modifiers
	force  bool
	copy   bool
	policy worktree.Policy
}

// usageError is returned for invalid invocations; the usage text is
// printed after the message.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// normalizeFlags maps --remove onto --rm
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "remove" {
		name = "rm"
	}
	return pflag.NormalizedName(name)
}

// newRootCmd builds the quicktree command. All behavior hangs off flags on
// the root command; there are no subcommands.
func newRootCmd(a *app) *cobra.Command {
	opts := &options{policy: a.cfg.PathPolicy}

	cmd := &cobra.Command{
		Use:   "quicktree <title>",
		Short: "Create and manage git worktrees named after the current project",
		Long: `quicktree creates a git worktree for the current repository at

  $QUICKTREE_DIR/<project>-<title>

on a new branch named after the title. The project is the name of the
current directory. QUICKTREE_DIR defaults to ~/worktrees.

Titles are sanitized: lowercased, and everything outside [a-z0-9-]
becomes a single "-". Use --path-policy trim to keep titles as typed
(surrounding whitespace is still removed).

--remove is accepted as an alias for --rm.`,
		Example: `  quicktree "Fix login bug"      # ~/worktrees/myproj-fix-login-bug on branch fix-login-bug
  cd "$(quicktree feature-x)"     # create (or find) and jump into it
  quicktree -l                    # git worktree list
  quicktree -i                    # myproj,myproj-feature-x (for shell prompts)
  quicktree -r feature-x          # remove ~/worktrees/myproj-feature-x
  quicktree -r feature-x -f       # remove even with uncommitted changes
  quicktree -p                    # git worktree prune`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger := log.New(a.stderr, opts.verbose, opts.quiet)
			ctx = log.WithLogger(ctx, logger)
			ctx = output.WithPrinter(ctx, a.stdout)
			ctx = config.WithConfig(ctx, &a.cfg)
			cmd.SetContext(ctx)

			if a.cfgErr != nil && !opts.info {
				logger.Printf("%s %v\n", styles.WarningStyle.Render("Warning:"), a.cfgErr)
			}
			logger.Debug("config loaded",
				"worktree_dir", a.cfg.WorktreeDir,
				"project", a.cfg.ProjectName,
				"policy", opts.policy,
				"file", a.cfg.File)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, opts, args)
		},
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlags)

	f := cmd.Flags()
	f.BoolVarP(&opts.list, "list", "l", false, "List worktrees (git worktree list)")
	f.BoolVarP(&opts.info, "info", "i", false, "Print worktree folder names comma-separated, silent on error")
	f.BoolVarP(&opts.prune, "prune", "p", false, "Prune stale worktree references (git worktree prune)")
	f.StringVarP(&opts.remove, "rm", "r", "", "Remove the worktree for `title`")
	f.BoolVarP(&opts.force, "force", "f", false, "With --rm: remove even if dirty; with --init-config: overwrite")
	f.BoolVarP(&opts.copy, "copy", "c", false, "Copy the worktree path to the clipboard")
	f.Var(&opts.policy, "path-policy", "How titles become folder names: "+policyNames())
	f.BoolVar(&opts.initConfig, "init-config", false, "Write a default config file to "+config.Path("~"))
	// --info is left out: it wins over any other action
	cmd.MarkFlagsMutuallyExclusive("list", "prune", "rm", "init-config")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show git commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	return cmd
}

// dispatch validates flag combinations and runs the selected action
func (a *app) dispatch(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	removing := cmd.Flags().Changed("rm")
	action := opts.list || opts.info || opts.prune || removing || opts.initConfig

	if opts.info {
		a.info(ctx)
		return nil
	}

	if opts.force && !removing && !opts.initConfig {
		return usageErrorf("--force can only be used with --rm or --init-config")
	}
	if opts.copy && action {
		return usageErrorf("--copy can only be used when creating a worktree")
	}
	if action && len(args) > 0 {
		return usageErrorf("unexpected argument %q", args[0])
	}

	switch {
	case opts.initConfig:
		return a.initConfig(ctx, opts.force)
	case opts.list:
		return a.list(ctx)
	case opts.prune:
		return a.prune(ctx)
	case removing:
		return a.remove(ctx, opts.remove, opts.force, opts.policy)
	}

	switch len(args) {
	case 0:
		return usageErrorf("missing worktree title")
	case 1:
		return a.create(ctx, args[0], opts.policy, opts.copy)
	default:
		return usageErrorf("expected one title, got %d arguments (quote titles containing spaces)", len(args))
	}
}

// policyNames returns the accepted --path-policy values, e.g. "sanitize|trim"
func policyNames() string {
	names := make([]string, len(worktree.Policies))
	for i, p := range worktree.Policies {
		names[i] = p.String()
	}
	return strings.Join(names, "|")
}

// run executes quicktree with args and returns the process exit code
func (a *app) run(ctx context.Context, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// --info never fails, even on flag errors
		if requestsInfo(args) {
			return 0
		}
		fmt.Fprintf(a.stderr, "%s %v\n", styles.ErrorStyle.Render("Error:"), err)

		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(a.stderr)
			fmt.Fprint(a.stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}

// requestsInfo reports whether args ask for --info. It looks at the raw
// arguments so it also works when flag parsing or config loading failed.
func requestsInfo(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--info" || arg == "--info=true":
			return true
		case strings.HasPrefix(arg, "--"):
			continue
		case strings.HasPrefix(arg, "-"):
			for _, c := range arg[1:] {
				if c == 'i' {
					return true
				}
				if c == 'r' {
					break // rest of the group is the --rm value
				}
			}
		}
	}
	return false
}

// loadFailed reports a fatal config.Load error and returns the exit code.
// --info stays silent and succeeds.
func loadFailed(args []string, stderr io.Writer, err error) int {
	if requestsInfo(args) {
		return 0
	}
	fmt.Fprintf(stderr, "%s %v\n", styles.ErrorStyle.Render("Error:"), err)
	return 1
}

// Execute gathers the configuration once, runs quicktree and exits.
func Execute() {
	stderr := styles.NewWriter(os.Stderr, os.Environ())

	cfg, err := config.Load()
	if cfg.WorkDir == "" {
		os.Exit(loadFailed(os.Args[1:], stderr, err))
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{
		cfg:    cfg,
		cfgErr: err,
		vcs:    git.NewClient(cfg.WorkDir),
		stdout: os.Stdout,
		stderr: stderr,
	}
	code := a.run(ctx, os.Args[1:])

	cancel()
	os.Exit(code)
}
