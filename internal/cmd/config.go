package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Iron-Ham/tasktracker/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify tasktracker configuration",
	Long: `View or modify tasktracker configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  tasktracker config set tui.theme dracula
  tasktracker config set logging.enabled true

Valid keys:
  tui.theme                  - Color theme name
  tui.alt_screen             - Use the alternate screen (true/false)
  tui.watch_theme            - Reload the custom theme file on change (true/false)
  tui.max_description_length - Longest task description, in characters
  logging.enabled            - Write a debug log (true/false)
  logging.level              - debug, info, warn or error
  logging.dir                - Log directory
  logging.max_size_mb        - Rotate the log at this size; 0 disables rotation
  logging.max_backups        - Rotated logs to keep
  logging.compress           - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tasktracker/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeys maps each settable key to its value kind.
var configKeys = map[string]string{
	"tui.theme":                  "string",
	"tui.alt_screen":             "bool",
	"tui.watch_theme":            "bool",
	"tui.max_description_length": "int",
	"logging.enabled":            "bool",
	"logging.level":              "string",
	"logging.dir":                "string",
	"logging.max_size_mb":        "int",
	"logging.max_backups":        "int",
	"logging.compress":           "bool",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if configReadErr != nil {
		return configReadErr
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// parseConfigValue converts a command-line value to the key's type.
func parseConfigValue(key, value string) (any, error) {
	kind, ok := configKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'tasktracker config set --help' to see valid keys", key)
	}

	switch kind {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]

	typedValue, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}
	// Rewriting a file viper could not read would lose its contents.
	if configReadErr != nil {
		return configReadErr
	}

	// Validate against a copy before anything touches disk.
	candidate := viper.New()
	if err := candidate.MergeConfigMap(viper.AllSettings()); err != nil {
		return fmt.Errorf("reading current config: %w", err)
	}
	candidate.Set(key, typedValue)
	if _, err := config.LoadFrom(candidate); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if used := viper.ConfigFileUsed(); used != "" {
		configFile = used
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

const configTemplate = `# tasktracker configuration

# Terminal UI settings
tui:
  # Color theme: a built-in name or a custom theme in the themes directory
  theme: default
  # Draw in the terminal's alternate screen
  alt_screen: true
  # Reload a custom theme when its file changes
  watch_theme: false
  # Longest task description accepted by the add dialog
  max_description_length: 200

# Debug log (never written to the terminal)
logging:
  enabled: false
  # debug, info, warn or error
  level: info
  # Directory for tasktracker.log; empty means the config directory
  dir: ""
  # Rotate at this size in MB; 0 disables rotation
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'tasktracker config set' to modify values", configFile)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(configTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize tasktracker.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", config.ConfigFile())
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: TASKTRACKER_* (e.g., TASKTRACKER_TUI_THEME)")
	return nil
}
