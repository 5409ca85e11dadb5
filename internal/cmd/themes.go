package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/config"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage color themes",
	Long: `Manage color themes for the tasktracker TUI.

tasktracker supports both built-in themes and custom user-defined themes.
Custom themes are stored in ~/.config/tasktracker/themes/ as YAML files.

Use 'themes list' to see all available themes.
Use 'themes export' to create a template for custom themes.`,
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemesList,
}

var themesExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  tasktracker themes export default                 # Print default theme to stdout
  tasktracker themes export dracula my-theme.yaml   # Save dracula theme to file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemesExport,
}

var themesInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show information about a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesInfo,
}

var themesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	RunE:  runThemesPath,
}

var themesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new custom theme from the default palette",
	Long: `Create a new custom theme file in your themes directory.

Example:
  tasktracker themes create ocean
  # Creates ~/.config/tasktracker/themes/ocean.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runThemesCreate,
}

func init() {
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesExportCmd)
	themesCmd.AddCommand(themesInfoCmd)
	themesCmd.AddCommand(themesPathCmd)
	themesCmd.AddCommand(themesCreateCmd)
	rootCmd.AddCommand(themesCmd)
}

// discoverThemes loads custom themes and prints any load errors to w.
func discoverThemes(w io.Writer) []error {
	_, loadErrs := styles.DiscoverCustomThemes()
	if len(loadErrs) > 0 {
		fmt.Fprintln(w, "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(w, "  - %v\n", err)
		}
		fmt.Fprintln(w)
	}
	return loadErrs
}

// requireTheme returns an error unless name is a known theme, pointing at
// the load error when a file by that name exists but is broken.
func requireTheme(name string, loadErrs []error) error {
	if styles.IsValidTheme(name) {
		return nil
	}
	for _, err := range loadErrs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %w", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s\n\nRun 'tasktracker themes list' to see available themes.\nCustom themes should be placed in: %s", name, styles.ThemesDir())
}

func runThemesList(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if customNames := styles.CustomThemeNames(); len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())
	return nil
}

func runThemesExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := requireTheme(name, discoverThemes(cmd.ErrOrStderr())); err != nil {
		return err
	}

	data, err := styles.ExportTheme(styles.ThemeName(name))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemesInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := requireTheme(name, discoverThemes(cmd.ErrOrStderr())); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme: %s\n\n", name)

	if styles.IsBuiltinTheme(name) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(name)); theme != nil {
			if theme.Author != "" {
				fmt.Fprintf(out, "Author: %s\n", theme.Author)
			}
			if theme.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", theme.Description)
			}
		}
		fmt.Fprintf(out, "File: %s\n", styles.CustomThemePath(styles.ThemeName(name)))
	}

	p := styles.GetPalette(styles.ThemeName(name))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Colors:")
	for _, c := range []struct{ label, value string }{
		{"Primary", string(p.Primary)},
		{"Secondary", string(p.Secondary)},
		{"Muted", string(p.Muted)},
		{"Surface", string(p.Surface)},
		{"Text", string(p.Text)},
		{"Border", string(p.Border)},
		{"Checked", string(p.Checked)},
		{"Cursor bg", string(p.CursorBg)},
		{"Cursor fg", string(p.CursorFg)},
		{"Banner", string(p.Banner)},
	} {
		fmt.Fprintf(out, "  %-10s %s\n", c.label+":", c.value)
	}
	return nil
}

func runThemesPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := styles.ThemesDir()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
		fmt.Fprintln(out, "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemesCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !config.IsValidThemeName(name) {
		return fmt.Errorf("invalid theme name %q: use lowercase letters, digits, '-' and '_'", name)
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	themePath := filepath.Join(styles.ThemesDir(), name+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, themePath)
	}

	theme := styles.ThemeFromPalette(name, styles.DefaultPalette())
	theme.Description = "A custom tasktracker theme"

	if err := styles.SaveTheme(name, theme); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n\n", themePath)
	fmt.Fprintln(out, "Edit this file to customize your theme colors, then run:")
	fmt.Fprintf(out, "  tasktracker config set tui.theme %s\n", name)
	return nil
}
