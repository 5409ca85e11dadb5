package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	// Colors from the palette
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Text input and help text
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	// Title banner
	Title lipgloss.Style

	// Task list
	ListArea    lipgloss.Style
	Placeholder lipgloss.Style
	TaskRow     lipgloss.Style
	TaskChecked lipgloss.Style
	Checkbox    lipgloss.Style
	CursorRow   lipgloss.Style

	// Bottom action bar
	ActionBar      lipgloss.Style
	ActionKey      lipgloss.Style
	ActionLabel    lipgloss.Style
	ActionDisabled lipgloss.Style

	// Deletion banner
	Banner lipgloss.Style

	// Add dialog
	DialogBox    lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Help keys
	HelpKey lipgloss.Style
}

// NewThemedStyles creates a new ThemedStyles from a color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.ListArea = lipgloss.NewStyle().
		Padding(0, 1)

	s.Placeholder = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.TaskRow = lipgloss.NewStyle().
		Foreground(p.Text)

	s.TaskChecked = lipgloss.NewStyle().
		Foreground(p.Checked).
		Strikethrough(true)

	s.Checkbox = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.CursorRow = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.CursorFg).
		Background(p.CursorBg)

	s.ActionBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.ActionKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.ActionLabel = lipgloss.NewStyle().
		Foreground(p.Text)

	s.ActionDisabled = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true)

	s.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Banner).
		Background(p.Surface).
		Padding(0, 2)

	s.DialogBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)

	s.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.DialogPrompt = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	return s
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

// activeThemeName is the name last passed to SetActiveTheme.
var activeThemeName = ThemeDefault

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
	syncGlobalStyles()
}

// SetActiveTheme updates the active theme to the specified theme name.
// This updates all the global style variables to use the new theme colors.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	activeThemeName = name
	activeTheme = NewThemedStyles(GetPalette(name))
	syncGlobalStyles()
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// ActiveThemeName returns the name last passed to SetActiveTheme.
func ActiveThemeName() ThemeName {
	return activeThemeName
}

// syncGlobalStyles updates the global style variables to match the active theme.
func syncGlobalStyles() {
	Primary = activeTheme.Primary
	Muted = activeTheme.Muted
	Text = activeTheme.Text

	Title = activeTheme.Title

	ListArea = activeTheme.ListArea
	Placeholder = activeTheme.Placeholder
	TaskRow = activeTheme.TaskRow
	TaskChecked = activeTheme.TaskChecked
	Checkbox = activeTheme.Checkbox
	CursorRow = activeTheme.CursorRow

	ActionBar = activeTheme.ActionBar
	ActionKey = activeTheme.ActionKey
	ActionLabel = activeTheme.ActionLabel
	ActionDisabled = activeTheme.ActionDisabled

	Banner = activeTheme.Banner

	DialogBox = activeTheme.DialogBox
	DialogTitle = activeTheme.DialogTitle
	DialogPrompt = activeTheme.DialogPrompt

	HelpKey = activeTheme.HelpKey
}
