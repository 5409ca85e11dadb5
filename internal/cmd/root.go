package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/config"
	"github.com/Iron-Ham/tasktracker/internal/logging"
	"github.com/Iron-Ham/tasktracker/internal/tui"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("tasktracker needs an interactive terminal")

// configReadErr is the failure from reading the config file during
// initConfig. Commands that use the config report it.
var configReadErr error

var rootCmd = &cobra.Command{
	Use:   "tasktracker",
	Short: "A single-screen terminal task list",
	Long: `tasktracker keeps a short to-do list in your terminal.

Press 'a' to add a task, space to check it off, and 'd' to clear
everything you have finished. Tasks live only as long as the program
runs.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTracker,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/tasktracker/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("theme", "", "color theme (see 'tasktracker themes list')")
	_ = viper.BindPFlag("tui.theme", rootCmd.Flags().Lookup("theme"))

	rootCmd.Flags().String("log-level", "", "enable the debug log at this level (debug, info, warn, error)")
	rootCmd.Flags().Bool("no-alt-screen", false, "draw inline instead of in the alternate screen")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()
	configReadErr = readConfigFile()
}

// readConfigFile reads the config file into viper. A missing file is only an
// error when it was named with --config.
func readConfigFile() error {
	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKTRACKER")
	// e.g., TASKTRACKER_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("reading config file: %w", err)
}

func runTracker(cmd *cobra.Command, args []string) error {
	if configReadErr != nil {
		return configReadErr
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyRunFlags(cmd, cfg); err != nil {
		return err
	}

	logger := setupLogger(cfg)
	defer func() { _ = logger.Close() }()

	theme := activateTheme(cfg.TUI.Theme, logger)

	app := tui.New(tui.Options{
		Theme:                theme,
		AltScreen:            cfg.TUI.AltScreen,
		WatchTheme:           cfg.TUI.WatchTheme,
		MaxDescriptionLength: cfg.TUI.MaxDescriptionLength,
		Logger:               logger,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// applyRunFlags layers the flags viper does not bind onto cfg.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		if !isValidLogLevel(level) {
			return fmt.Errorf("invalid --log-level %q: must be one of %s",
				level, strings.Join(config.ValidLogLevels(), ", "))
		}
		cfg.Logging.Enabled = true
		cfg.Logging.Level = level
	}

	if noAlt, _ := cmd.Flags().GetBool("no-alt-screen"); noAlt {
		cfg.TUI.AltScreen = false
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, valid := range config.ValidLogLevels() {
		if strings.EqualFold(level, valid) {
			return true
		}
	}
	return false
}

// setupLogger creates the debug log described by cfg, or a no-op logger
// when logging is off. A log that cannot be opened is reported and skipped.
func setupLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, cfg.Logging.Rotation())
	if err != nil {
		// Log creation failure shouldn't prevent the application from starting
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}

	return logger
}

// activateTheme loads custom themes and makes name the active theme. An
// unknown name falls back to the default theme.
func activateTheme(name string, logger *logging.Logger) styles.ThemeName {
	loaded, loadErrs := styles.DiscoverCustomThemes()
	for _, err := range loadErrs {
		logger.Warn("custom theme failed to load", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", strings.Join(loaded, ","))
	}

	theme := styles.ThemeName(name)
	if !styles.IsValidTheme(name) {
		logger.Warn("unknown theme, using default", "theme", name)
		theme = styles.ThemeDefault
	}

	styles.SetActiveTheme(theme)
	return theme
}
