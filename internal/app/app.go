package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/vk/tcplika/internal/cli"
	"github.com/vk/tcplika/internal/config"
	"github.com/vk/tcplika/internal/ctxlog"
	"github.com/vk/tcplika/internal/engine"
)

// logTimeLayout renders engine log timestamps as yyyy-MM-dd HH:mm:ss.fffffff.
const logTimeLayout = "2006-01-02 15:04:05.0000000"

// Options holds the dependencies of an App. Zero fields get defaults in New.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	Version   string
	NewEngine engine.Factory
	Now       func() time.Time
}

// App drives a single invocation from argv to termination.
type App struct {
	out       *bufio.Writer
	errW      io.Writer
	version   string
	newEngine engine.Factory
	now       func() time.Time
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	trace []State
}

// New is the constructor for the orchestrator. Until the configuration is
// resolved it logs at info level in text format on Err.
func New(opts Options) *App {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Err == nil {
		opts.Err = io.Discard
	}
	if opts.NewEngine == nil {
		opts.NewEngine = engine.NewPlanner
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	return &App{
		out:       bufio.NewWriter(opts.Out),
		errW:      opts.Err,
		version:   opts.Version,
		newEngine: opts.NewEngine,
		now:       opts.Now,
		logger:    newLogger(config.DefaultLogLevel, config.DefaultLogFormat, opts.Err),
		state:     StateIdle,
		trace:     []State{StateIdle},
	}
}

// State reports the current lifecycle state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Trace returns the states visited so far, in order.
func (a *App) Trace() []State {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]State, len(a.trace))
	copy(out, a.trace)
	return out
}

// Execute runs one invocation. A nil error means success. Command-line
// problems come back as *cli.ExitError with code 2 and engine failures with
// code 1; their message has already been written to Err.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer a.terminate()

	a.enter(StateParsing)
	tokens, err := cli.Tokenize(ctxlog.WithLogger(ctx, a.logger), args)
	if err != nil {
		return a.commandLineFailure(err)
	}

	a.enter(StateValidating)
	cfg, err := config.Resolve(tokens.Options, tokens.Positionals)
	if err != nil {
		return a.commandLineFailure(err)
	}

	a.logger = loggerFor(cfg, a.errW)
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Configuration resolved.", "config", cfg)

	switch {
	case cfg.Help:
		a.enter(StateHelpDisplay)
		return a.showUsage()
	case cfg.Version:
		a.enter(StateVersionDisplay)
		return a.showVersion()
	default:
		a.enter(StateRunning)
		return a.run(ctx, cfg)
	}
}

func (a *App) run(ctx context.Context, cfg config.Configuration) error {
	eng, err := a.newEngine(cfg, a.logSink())
	if err != nil {
		return a.engineFailure(fmt.Errorf("failed to create engine: %w", err))
	}

	a.logger.Info("Engine starting.", "endpoints", len(cfg.RemoteEndpoints))
	if err := eng.Start(ctx); err != nil {
		return a.engineFailure(fmt.Errorf("engine failed: %w", err))
	}
	a.logger.Info("Engine finished.")
	return nil
}

func (a *App) showUsage() error {
	usage, err := cli.Usage()
	if err != nil {
		return err
	}
	pterm.DefaultBasicText.WithWriter(a.out).Print(usage)
	return nil
}

func (a *App) showVersion() error {
	pterm.DefaultBasicText.WithWriter(a.out).Println("tcplika " + a.version)
	return nil
}

// logSink is handed to the engine. Every line is flushed as it is written
// so a long run streams its log.
func (a *App) logSink() engine.LogFunc {
	return func(msg string) {
		a.mu.Lock()
		defer a.mu.Unlock()
		fmt.Fprintf(a.out, "%s|%s\n", a.now().Format(logTimeLayout), msg)
		if err := a.out.Flush(); err != nil {
			a.logger.Warn("Failed to flush engine log.", "error", err)
		}
	}
}

// commandLineFailure reports err to the user. Anything that is not a
// command-line error is returned untouched.
func (a *App) commandLineFailure(err error) error {
	var cmdErr *config.CommandLineError
	if !errors.As(err, &cmdErr) {
		return err
	}
	a.logger.Debug("Command line rejected.", "error", err)
	pterm.Error.WithWriter(a.errW).Println(cmdErr.Message)
	return &cli.ExitError{Code: cli.ExitCommandLine, Message: cmdErr.Message, Err: err}
}

func (a *App) engineFailure(err error) error {
	a.logger.Error("Engine failed.", "error", err)
	pterm.Error.WithWriter(a.errW).Println(err.Error())
	return &cli.ExitError{Code: cli.ExitEngine, Message: err.Error(), Err: err}
}

func (a *App) enter(s State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = s
	a.trace = append(a.trace, s)
	a.logger.Debug("State entered.", "state", s.String())
}

// terminate runs on every exit path, panics included.
func (a *App) terminate() {
	a.enter(StateTerminated)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.out.Flush(); err != nil {
		a.logger.Warn("Failed to flush output.", "error", err)
	}
}
