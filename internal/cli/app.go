// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the cpmod command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cliAdapter "github.com/janderssonse/cpmod/internal/adapters/cli"
	"github.com/janderssonse/cpmod/internal/adapters/platform"
	"github.com/janderssonse/cpmod/internal/application"
	"github.com/janderssonse/cpmod/internal/config"
	"github.com/janderssonse/cpmod/internal/console"
	"github.com/janderssonse/cpmod/internal/domain"
	"github.com/urfave/cli/v3"
)

// Exit codes. Every failure exits with 1, as the original cpmod did, so
// scripts checking for non-zero keep working.
const (
	ExitSuccess      = 0 // Operation completed successfully (per-file failures included)
	ExitGeneralError = 1 // Config or interrupted run
	ExitUsageError   = 1 // Missing arguments, help requested, bad spec
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev" //nolint:gochecknoglobals

var (
	// ErrMissingArguments is returned when SPEC or FILE is absent.
	ErrMissingArguments = errors.New("missing SPEC or FILE argument")
)

// cpmod owns -h/--help: usage goes to stderr with exit 1, so the library's
// help handling is switched off.
func init() { //nolint:gochecknoinits
	cli.HelpFlag = nil
}

const usageText = `Usage: cpmod [--recursive|-R] SPEC FILE [FILE...]

Copy permission bits from one class (u, g or o) to one or more others.

SPEC is SOURCE-DESTINATIONS: u-g copies the user bits to group, g-uo copies
the group bits to user and then to other. '+' may be used instead of '-'.
Destinations are applied left to right, each one seeing the bits written by
the previous ones.

Options:
  -R, -r, --recursive   accepted; directory contents are left unchanged
  -n, --dry-run         show the result without changing any file
  -v, --verbose         show progress on stderr
  -j, --json            print results as JSON
  -q, --quiet           do not print per-file results
      --no-color        never highlight diagnostics
      --config FILE     read defaults from FILE (default $XDG_CONFIG_HOME/cpmod/config.toml)
      --version         print the version and exit
  -h, --help            show this help and exit`

// CLI holds the root command and the flag values it binds to.
type CLI struct {
	app *cli.Command

	help       bool
	version    bool
	recursive  bool
	verbose    bool
	json       bool
	quiet      bool
	dryRun     bool
	noColor    bool
	configPath string
	lockPath   string

	store   domain.ModeStore
	stdout  io.Writer
	console *console.OutputState
}

// NewCLI creates the CLI with the real filesystem and standard streams.
func NewCLI() *CLI {
	return NewCLIWithDeps(nil, os.Stdout, os.Stderr)
}

// NewCLIWithDeps creates the CLI with an injected mode store and output
// streams for testing. A nil store means the platform store.
func NewCLIWithDeps(store domain.ModeStore, stdout, stderr io.Writer) *CLI {
	app := &CLI{
		lockPath: config.GetLockPath(),
		store:    store,
		stdout:   stdout,
		console:  console.NewOutputState(stderr),
	}

	app.app = &cli.Command{
		Name:        "cpmod",
		Usage:       "copy permission bits between user, group and other",
		UsageText:   "cpmod [--recursive|-R] SPEC FILE [FILE...]",
		Description: usageText,
		HideHelp:    true,
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags:       app.flags(),
		Before:      app.initConfig,
		Action:      app.run,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			app.console.Errorf("%v", err)
			app.printUsage()

			return domain.NewExitError(ExitUsageError, "", err)
		},
	}

	return app
}

func (app *CLI) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "help",
			Usage:       "show help information",
			Aliases:     []string{"h"},
			Destination: &app.help,
		},
		&cli.BoolFlag{
			Name:        "version",
			Usage:       "print the version and exit",
			Destination: &app.version,
		},
		&cli.BoolFlag{
			Name:        "recursive",
			Usage:       "accepted for compatibility; directory contents are left unchanged",
			Aliases:     []string{"R", "r"},
			Destination: &app.recursive,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "show the result without changing any file",
			Aliases:     []string{"n"},
			Destination: &app.dryRun,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "show progress messages to stderr",
			Aliases:     []string{"v"},
			Destination: &app.verbose,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output structured JSON results",
			Aliases:     []string{"j"},
			Destination: &app.json,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Usage:       "suppress per-file result lines",
			Aliases:     []string{"q"},
			Destination: &app.quiet,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "never highlight diagnostics",
			Destination: &app.noColor,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "read defaults from this TOML file",
			TakesFile:   true,
			Sources:     cli.EnvVars("CPMOD_CONFIG"),
			Destination: &app.configPath,
		},
	}
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// App returns the root command of a CLI bound to the real filesystem.
func App() *CLI {
	return NewCLI()
}

// initConfig fills flags that were not given on the command line from the config file.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if app.help {
		return ctx, nil
	}

	path := app.configPath
	if path == "" {
		path = config.GetConfigPath()
	} else {
		path = config.ExpandPath(path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		app.console.Errorf("%v", err)

		return ctx, domain.NewExitError(ExitGeneralError, "", err)
	}

	applyDefault(cmd, "verbose", &app.verbose, cfg.Verbose)
	applyDefault(cmd, "json", &app.json, cfg.JSON)
	applyDefault(cmd, "quiet", &app.quiet, cfg.Quiet)
	applyDefault(cmd, "dry-run", &app.dryRun, cfg.DryRun)
	applyDefault(cmd, "no-color", &app.noColor, cfg.NoColor)

	app.console.SetMode(app.verbose && !app.json, app.noColor)

	return ctx, nil
}

func applyDefault(cmd *cli.Command, name string, flag *bool, value bool) {
	if !cmd.IsSet(name) {
		*flag = value
	}
}

func (app *CLI) printUsage() {
	app.console.Println(usageText)
}

func (app *CLI) run(ctx context.Context, cmd *cli.Command) error {
	if app.help {
		app.printUsage()

		return domain.NewExitError(ExitUsageError, "", nil)
	}

	if app.version {
		_, _ = fmt.Fprintf(app.stdout, "cpmod %s\n", Version)

		return nil
	}

	output := cliAdapter.OutputFromFlags(app.stdout, app.json, app.quiet)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return app.usageFailure(output, ErrMissingArguments)
	}

	spec, err := domain.ParseSpec(args[0])
	if err != nil {
		return app.usageFailure(output, err)
	}

	if len(args) < 2 {
		return app.usageFailure(output, ErrMissingArguments)
	}

	return app.copyModes(ctx, spec, args[1:], output)
}

// usageFailure reports a fatal argument error followed by the usage text.
func (app *CLI) usageFailure(output *cliAdapter.OutputAdapter, err error) error {
	if output.IsJSON() {
		_ = output.Error(err.Error())
	}

	app.console.Errorf("%v", err)
	app.printUsage()

	return domain.NewExitError(ExitUsageError, "", err)
}

func (app *CLI) copyModes(ctx context.Context, spec *domain.TransferSpec, paths []string, output *cliAdapter.OutputAdapter) error {
	store := app.store
	if store == nil {
		store = platform.NewModeStore(app.verbose && !app.json)
	}

	service := application.NewCopyService(store, application.CopyOptions{
		Recursive: app.recursive,
		DryRun:    app.dryRun,
	})

	app.console.Progressf("Copying %s", describeSpec(spec))

	if app.dryRun {
		app.console.Progressf("Dry run: no file will be changed")
	} else if release := app.acquireRunLock(); release != nil {
		defer release()
	}

	result, err := service.Run(ctx, spec, paths, func(r *domain.FileResult) {
		app.reportFile(output, r)
	})

	if output.IsJSON() {
		if encodeErr := output.Success("", result); encodeErr != nil {
			return domain.NewExitError(ExitGeneralError, "failed to output results", encodeErr)
		}
	}

	if err != nil {
		app.console.Errorf("%v", err)

		return domain.NewExitError(ExitGeneralError, "", err)
	}

	app.console.Progressf("%d changed, %d unchanged, %d failed", result.Changed, result.Unchanged, result.Failed)

	return nil
}

// acquireRunLock takes the per-user run lock. A lock that cannot be taken
// is reported as a warning and the run continues without it.
func (app *CLI) acquireRunLock() func() {
	if app.lockPath == "" {
		return nil
	}

	lock := platform.NewRunLock(app.lockPath)

	locked, err := lock.TryAcquire()
	if err != nil {
		app.console.Warningf("%v; continuing without the run lock", err)

		return nil
	}

	if !locked {
		app.console.Warningf("another cpmod run is in progress; continuing without the run lock")

		return nil
	}

	return func() {
		if err := lock.Release(); err != nil {
			app.console.Warningf("failed to release run lock: %v", err)
		}
	}
}

func (app *CLI) reportFile(output *cliAdapter.OutputAdapter, r *domain.FileResult) {
	if r.Failed() {
		app.console.Errorf("%s", r.Error)

		return
	}

	app.console.Progressf("%s: %s -> %s", r.Path, r.OldMode, r.NewMode)

	if !output.IsJSON() {
		_ = output.Success(r.Line(), nil)
	}

	if r.Warning != "" {
		app.console.Warningf("%s", r.Warning)
	}
}
