// Package tui runs the task tracker screen as a Bubbletea program.
package tui

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/tasktracker/internal/logging"
	"github.com/Iron-Ham/tasktracker/internal/tui/keymap"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the application.
type Options struct {
	// Theme is the active theme; watched for changes when WatchTheme is set
	// and the theme is backed by a custom file.
	Theme      styles.ThemeName
	AltScreen  bool
	WatchTheme bool

	// MaxDescriptionLength caps the add dialog input. Zero means the default.
	MaxDescriptionLength int

	// Keymap overrides the default bindings.
	Keymap *keymap.Keymap

	Logger *logging.Logger

	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	opts    Options
	logger  *logging.Logger
}

// New creates a new TUI application
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(opts),
		opts:   opts,
		logger: logger.WithComponent("app"),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(a.model, a.programOptions()...)

	// Route termination signals through the program so the terminal is
	// restored before exit.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		a.logger.Info("signal received", "signal", sig.String())
		a.program.Send(tea.Quit())
	}()

	if watcher := a.startThemeWatcher(); watcher != nil {
		defer watcher.Stop()
	}

	a.logger.Info("tui started", "theme", string(a.opts.Theme), "alt_screen", a.opts.AltScreen)
	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	if err != nil {
		a.logger.Error("tui exited with error", "error", err.Error())
		return err
	}
	a.logger.Info("tui stopped")
	return nil
}

func (a *App) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if a.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.opts.Input != nil {
		opts = append(opts, tea.WithInput(a.opts.Input))
	}
	if a.opts.Output != nil {
		opts = append(opts, tea.WithOutput(a.opts.Output))
	}
	return opts
}

// startThemeWatcher watches the active custom theme file, if there is one.
// Changes are sent to the program so they are applied on the update loop.
func (a *App) startThemeWatcher() *styles.ThemeWatcher {
	if !a.opts.WatchTheme {
		return nil
	}

	path := styles.CustomThemePath(a.opts.Theme)
	if path == "" {
		a.logger.Info("theme watch skipped: not a custom theme file", "theme", string(a.opts.Theme))
		return nil
	}

	watcher, err := styles.NewThemeWatcher(a.opts.Theme, path, func(change styles.ThemeChange) {
		a.program.Send(themeChangedMsg{change: change})
	})
	if err != nil {
		a.logger.Warn("theme watch unavailable", "path", path, "error", err.Error())
		return nil
	}

	watcher.Start()
	a.logger.Debug("watching theme file", "path", path)
	return watcher
}
