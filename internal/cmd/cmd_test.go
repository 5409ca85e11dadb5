package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/tasktracker/internal/config"
	"github.com/Iron-Ham/tasktracker/internal/logging"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// executeCommand runs the root command with args and returns captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// isolate points the config and theme directories at a temp dir and resets
// viper so tests don't see the user's real configuration.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	viper.Reset()
	styles.ClearCustomThemes()
	t.Cleanup(func() {
		viper.Reset()
		styles.ClearCustomThemes()
		styles.SetActiveTheme(styles.ThemeDefault)
	})
	return filepath.Join(dir, "tasktracker")
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "tasktracker" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "tasktracker")
	}

	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range []string{"config", "themes", "version"} {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"theme", "log-level", "no-alt-screen"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s", flag)
		}
	}
	if rootCmd.PersistentFlags().ShorthandLookup("c") == nil {
		t.Error("expected -c shorthand for --config")
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(output, "tasktracker "+Version) {
		t.Errorf("unexpected version output: %s", output)
	}
}

func TestApplyRunFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		enabled   bool
		level     string
		altScreen bool
	}{
		{name: "no flags", args: nil, enabled: false, level: "info", altScreen: true},
		{name: "log level enables logging", args: []string{"--log-level", "DEBUG"}, enabled: true, level: "DEBUG", altScreen: true},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantErr: true},
		{name: "no alt screen", args: []string{"--no-alt-screen"}, enabled: false, level: "info", altScreen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{}
			c.Flags().String("log-level", "", "")
			c.Flags().Bool("no-alt-screen", false, "")
			if err := c.Flags().Parse(tt.args); err != nil {
				t.Fatalf("parsing flags: %v", err)
			}

			cfg := config.Default()
			err := applyRunFlags(c, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyRunFlags failed: %v", err)
			}
			if cfg.Logging.Enabled != tt.enabled {
				t.Errorf("Logging.Enabled = %v, want %v", cfg.Logging.Enabled, tt.enabled)
			}
			if cfg.Logging.Level != tt.level {
				t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, tt.level)
			}
			if cfg.TUI.AltScreen != tt.altScreen {
				t.Errorf("TUI.AltScreen = %v, want %v", cfg.TUI.AltScreen, tt.altScreen)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("disabled returns a no-op logger", func(t *testing.T) {
		cfg := config.Default()
		logger := setupLogger(cfg)
		if logger == nil {
			t.Fatal("expected a logger")
		}
		_ = logger.Close()
	})

	t.Run("enabled writes to the configured dir", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Default()
		cfg.Logging.Enabled = true
		cfg.Logging.Dir = dir

		logger := setupLogger(cfg)
		logger.Info("hello")
		if err := logger.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, logging.LogFileName))
		if err != nil {
			t.Fatalf("log file not written: %v", err)
		}
		if !strings.Contains(string(data), `"msg":"hello"`) {
			t.Errorf("unexpected log content: %s", data)
		}
	})
}

func TestActivateTheme(t *testing.T) {
	isolate(t)

	if got := activateTheme("dracula", logging.NopLogger()); got != styles.ThemeDracula {
		t.Errorf("activateTheme(dracula) = %q", got)
	}
	if styles.ActiveThemeName() != styles.ThemeDracula {
		t.Errorf("active theme = %q, want dracula", styles.ActiveThemeName())
	}

	var buf bytes.Buffer
	if got := activateTheme("no-such-theme", logging.NewWriterLogger(&buf, logging.LevelDebug)); got != styles.ThemeDefault {
		t.Errorf("unknown theme should fall back to default, got %q", got)
	}
	if !strings.Contains(buf.String(), "unknown theme") {
		t.Errorf("expected fallback to be logged, got: %s", buf.String())
	}
}

func TestReadConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		explicit bool   // pass the file via the config key, as --config does
		content  string // empty means the file does not exist
		wantErr  bool
	}{
		{name: "no file found"},
		{name: "default file read", content: "tui:\n  theme: nord\n"},
		{name: "default file invalid", content: "tui: [unclosed\n", wantErr: true},
		{name: "explicit file missing", explicit: true, wantErr: true},
		{name: "explicit file invalid", explicit: true, content: "tui: [unclosed\n", wantErr: true},
		{name: "explicit file read", explicit: true, content: "tui:\n  theme: nord\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := isolate(t)
			path := filepath.Join(configDir, "config.yaml")
			if tt.explicit {
				path = filepath.Join(t.TempDir(), "custom.yaml")
				viper.Set("config", path)
			}
			if tt.content != "" {
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatalf("creating config dir: %v", err)
				}
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("writing config: %v", err)
				}
			}

			err := readConfigFile()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("readConfigFile failed: %v", err)
			}
			if tt.content != "" && viper.GetString("tui.theme") != "nord" {
				t.Errorf("tui.theme = %q, want nord", viper.GetString("tui.theme"))
			}
		})
	}
}
