package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Purple/green dark theme
	ThemeMonokai        ThemeName = "monokai"         // Classic Monokai editor colors
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeSolarizedDark  ThemeName = "solarized-dark"  // Solarized Dark by Ethan Schoonover
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light variant
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
	ThemeTokyoNight     ThemeName = "tokyo-night"     // Tokyo Night modern theme
	ThemeCatppuccin     ThemeName = "catppuccin"      // Catppuccin Mocha pastel theme
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeSolarizedDark),
		string(ThemeSolarizedLight),
		string(ThemeGruvbox),
		string(ThemeTokyoNight),
		string(ThemeCatppuccin),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (title, focused dialog border)
	Primary lipgloss.Color
	// Secondary accent color (unchecked checkboxes, key hints)
	Secondary lipgloss.Color
	// Muted color (placeholder, disabled actions, help text)
	Muted lipgloss.Color
	// Surface color (dialog and banner backgrounds)
	Surface lipgloss.Color
	// Text color (task descriptions)
	Text lipgloss.Color
	// Border color
	Border lipgloss.Color

	// Task list colors
	Checked  lipgloss.Color // completed task text
	CursorBg lipgloss.Color // highlighted row background
	CursorFg lipgloss.Color // highlighted row foreground
	Banner   lipgloss.Color // deletion banner text
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		Checked:  lipgloss.Color("#9CA3AF"),
		CursorBg: lipgloss.Color("#4C1D95"), // Violet-900
		CursorFg: lipgloss.Color("#F9FAFB"),
		Banner:   lipgloss.Color("#10B981"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"), // Monokai background
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		Checked:  lipgloss.Color("#75715E"),
		CursorBg: lipgloss.Color("#49483E"),
		CursorFg: lipgloss.Color("#E6DB74"),
		Banner:   lipgloss.Color("#A6E22E"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		Checked:  lipgloss.Color("#6272A4"),
		CursorBg: lipgloss.Color("#44475A"),
		CursorFg: lipgloss.Color("#F8F8F2"),
		Banner:   lipgloss.Color("#50FA7B"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		Checked:  lipgloss.Color("#4C566A"),
		CursorBg: lipgloss.Color("#5E81AC"), // Frost deep blue
		CursorFg: lipgloss.Color("#ECEFF4"),
		Banner:   lipgloss.Color("#A3BE8C"),
	}
}

// SolarizedDarkPalette returns the Solarized Dark palette.
func SolarizedDarkPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Muted:     lipgloss.Color("#586E75"), // Base01
		Surface:   lipgloss.Color("#002B36"), // Base03 background
		Text:      lipgloss.Color("#839496"), // Base0 text
		Border:    lipgloss.Color("#073642"), // Base02

		Checked:  lipgloss.Color("#586E75"),
		CursorBg: lipgloss.Color("#268BD2"),
		CursorFg: lipgloss.Color("#FDF6E3"), // Base3
		Banner:   lipgloss.Color("#859900"),
	}
}

// SolarizedLightPalette returns the Solarized Light palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#FDF6E3"), // Base3 background
		Text:      lipgloss.Color("#657B83"), // Base00 text
		Border:    lipgloss.Color("#EEE8D5"), // Base2

		Checked:  lipgloss.Color("#93A1A1"),
		CursorBg: lipgloss.Color("#268BD2"),
		CursorFg: lipgloss.Color("#FDF6E3"),
		Banner:   lipgloss.Color("#859900"),
	}
}

// GruvboxPalette returns the Gruvbox dark palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#83A598"), // Gruvbox aqua
		Secondary: lipgloss.Color("#B8BB26"), // Gruvbox green
		Muted:     lipgloss.Color("#928374"), // Gruvbox gray
		Surface:   lipgloss.Color("#282828"), // Gruvbox bg0
		Text:      lipgloss.Color("#EBDBB2"), // Gruvbox fg
		Border:    lipgloss.Color("#3C3836"), // Gruvbox bg1

		Checked:  lipgloss.Color("#928374"),
		CursorBg: lipgloss.Color("#FE8019"), // Orange
		CursorFg: lipgloss.Color("#282828"),
		Banner:   lipgloss.Color("#B8BB26"),
	}
}

// TokyoNightPalette returns the Tokyo Night palette.
func TokyoNightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#7AA2F7"), // Tokyo Night blue
		Secondary: lipgloss.Color("#9ECE6A"), // Tokyo Night green
		Muted:     lipgloss.Color("#565F89"), // Tokyo Night comment
		Surface:   lipgloss.Color("#1A1B26"), // Tokyo Night bg
		Text:      lipgloss.Color("#C0CAF5"), // Tokyo Night fg
		Border:    lipgloss.Color("#292E42"), // Tokyo Night bg_highlight

		Checked:  lipgloss.Color("#565F89"),
		CursorBg: lipgloss.Color("#7AA2F7"),
		CursorFg: lipgloss.Color("#1A1B26"),
		Banner:   lipgloss.Color("#9ECE6A"),
	}
}

// CatppuccinPalette returns the Catppuccin Mocha palette.
func CatppuccinPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#89B4FA"), // Catppuccin blue
		Secondary: lipgloss.Color("#A6E3A1"), // Catppuccin green
		Muted:     lipgloss.Color("#6C7086"), // Catppuccin overlay0
		Surface:   lipgloss.Color("#1E1E2E"), // Catppuccin base
		Text:      lipgloss.Color("#CDD6F4"), // Catppuccin text
		Border:    lipgloss.Color("#313244"), // Catppuccin surface0

		Checked:  lipgloss.Color("#6C7086"),
		CursorBg: lipgloss.Color("#89B4FA"),
		CursorFg: lipgloss.Color("#1E1E2E"),
		Banner:   lipgloss.Color("#A6E3A1"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeSolarizedDark:
		return SolarizedDarkPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeTokyoNight:
		return TokyoNightPalette()
	case ThemeCatppuccin:
		return CatppuccinPalette()
	default:
		return DefaultPalette()
	}
}
