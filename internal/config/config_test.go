package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.TUI.AltScreen {
		t.Error("TUI.AltScreen should be true by default")
	}
	if cfg.TUI.WatchTheme {
		t.Error("TUI.WatchTheme should be false by default")
	}
	if cfg.TUI.MaxDescriptionLength != 200 {
		t.Errorf("TUI.MaxDescriptionLength = %d, want 200", cfg.TUI.MaxDescriptionLength)
	}

	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Dir != "" {
		t.Errorf("Logging.Dir = %q, want empty", cfg.Logging.Dir)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/tasktracker"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "tasktracker")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFileAndThemesDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	if got := ConfigFile(); got != "/custom/config/tasktracker/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
	if got := ThemesDir(); got != "/custom/config/tasktracker/themes" {
		t.Errorf("ThemesDir() = %q", got)
	}
}

func TestLoggingConfig_ResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	home, _ := os.UserHomeDir()

	tests := []struct {
		dir  string
		want string
	}{
		{"", "/custom/config/tasktracker"},
		{"/var/log/tt", "/var/log/tt"},
		{"~", home},
		{"~/logs", filepath.Join(home, "logs")},
		{"~other/logs", "~other/logs"},
	}

	for _, tt := range tests {
		l := LoggingConfig{Dir: tt.dir}
		if got := l.ResolveDir(); got != tt.want {
			t.Errorf("ResolveDir() with Dir=%q = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestLoggingConfig_Rotation(t *testing.T) {
	l := LoggingConfig{MaxSizeMB: 5, MaxBackups: 2, Compress: true}
	r := l.Rotation()
	if r.MaxSizeMB != 5 || r.MaxBackups != 2 || !r.Compress {
		t.Errorf("Rotation() = %+v", r)
	}
}

func TestGet(t *testing.T) {
	// Set defaults in viper first (normally done by cmd init)
	SetDefaults()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("Get().TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("reads yaml over defaults", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		v.SetDefault("tui.theme", "default")
		v.SetDefault("tui.max_description_length", 200)
		v.SetDefault("logging.level", "info")
		v.SetDefault("logging.max_size_mb", 10)

		yaml := "tui:\n  theme: nord\n  alt_screen: false\nlogging:\n  enabled: true\n  level: debug\n"
		if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
			t.Fatalf("ReadConfig failed: %v", err)
		}

		cfg, err := LoadFrom(v)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.TUI.Theme != "nord" {
			t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
		}
		if cfg.TUI.AltScreen {
			t.Error("TUI.AltScreen should be false")
		}
		if cfg.TUI.MaxDescriptionLength != 200 {
			t.Errorf("TUI.MaxDescriptionLength = %d, want default 200", cfg.TUI.MaxDescriptionLength)
		}
		if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
			t.Errorf("Logging = %+v", cfg.Logging)
		}
	})

	t.Run("returns validation errors", func(t *testing.T) {
		v := viper.New()
		v.Set("tui.theme", "Bad Theme")
		v.Set("tui.max_description_length", 0)

		_, err := LoadFrom(v)
		if err == nil {
			t.Fatal("expected validation error")
		}
		verrs, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("error type = %T, want ValidationErrors", err)
		}
		if len(verrs) != 2 {
			t.Errorf("got %d errors, want 2: %v", len(verrs), verrs)
		}
	})
}
