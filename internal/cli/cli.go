package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"task-management/config"
	"task-management/internal/task"
	"task-management/internal/task/repository/rest"
	"task-management/internal/task/usecase"
	"task-management/internal/tui"
	"task-management/pkg/log"
)

// Exit codes returned by App.Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// quietLevel is the log level used unless --log-level is given, so that the
// normalized error message is the only thing printed on failure.
const quietLevel = "fatal"

const usageText = `Usage: taskctl [--base-url URL] [--log-level LEVEL] <command> [flags]

Commands:
  list    [--status S]                                   list tasks
  get     ID                                             show one task
  create  --title T [--description D] [--status S]       create a task
  update  ID [--title T] [--description D] [--status S]  edit a task
  delete  ID                                             delete a task
  tui                                                    interactive terminal UI

Statuses: TO_DO, IN_PROGRESS, DONE

Global flags:
`

type command struct {
	flags func(fs *pflag.FlagSet)
	run   func(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error
}

var commands = map[string]command{
	"list":   {flags: listFlags, run: runList},
	"get":    {run: runGet},
	"create": {flags: createFlags, run: runCreate},
	"update": {flags: updateFlags, run: runUpdate},
	"delete": {run: runDelete},
	"tui":    {run: runTUI},
}

// usageError marks a mistake in the command line itself.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

// App is the taskctl command line.
type App struct {
	stdout io.Writer
	stderr io.Writer
	runTUI func(ctx context.Context, uc task.UseCase) error
}

func New(stdout, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
		runTUI: tui.Run,
	}
}

// Run executes args (without the program name) and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	global := pflag.NewFlagSet("taskctl", pflag.ContinueOnError)
	global.SetOutput(a.stderr)
	global.SetInterspersed(false)
	global.String(config.FlagBaseURL, "", "task API base URL (default http://localhost:8081/api)")
	global.String(config.FlagLogLevel, "", "log level written to stderr: debug, info, warn, error")
	global.Usage = func() {
		fmt.Fprint(a.stderr, usageText)
		global.PrintDefaults()
	}

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	remaining := global.Args()
	if len(remaining) == 0 {
		global.Usage()
		return ExitUsage
	}

	name := remaining[0]
	cmd, ok := commands[name]
	if !ok {
		a.printError(fmt.Errorf("unknown command %q", name))
		global.Usage()
		return ExitUsage
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.AddFlagSet(global)
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(remaining[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		a.printError(err)
		return ExitFailure
	}

	uc := a.newUseCase(cfg, name, fs)
	if err := cmd.run(ctx, a, uc, fs); err != nil {
		a.printError(err)
		return exitCode(err)
	}
	return ExitOK
}

func (a *App) newUseCase(cfg *config.Config, name string, fs *pflag.FlagSet) task.UseCase {
	level := cfg.Logger.Level
	if !fs.Changed(config.FlagLogLevel) {
		level = quietLevel
	}

	var out io.Writer = a.stderr
	if name == "tui" {
		out = io.Discard
	}

	logger := log.InitWriter(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}, out)

	client := rest.NewClient(cfg.TaskAPI.BaseURL)
	return usecase.New(logger, rest.New(client, logger))
}

func (a *App) printError(err error) {
	fmt.Fprintln(a.stderr, errorStyle.Render("Error:"), err.Error())
}

func exitCode(err error) int {
	var uerr usageError
	switch {
	case errors.As(err, &uerr),
		errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus):
		return ExitUsage
	}
	return ExitFailure
}

// parseID reads the single positional task id.
func parseID(fs *pflag.FlagSet) (int64, error) {
	if fs.NArg() != 1 {
		return 0, usageError{fmt.Sprintf("%s: expected exactly one task ID", fs.Name())}
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError{fmt.Sprintf("%s: invalid task ID %q", fs.Name(), fs.Arg(0))}
	}
	return id, nil
}
