// Package styles holds the lipgloss styles for the task tracker UI, the
// built-in color themes, and the loader for custom YAML themes.
//
// The package-level variables always reflect the active theme. Renderers
// read them directly; SetActiveTheme swaps them all at once.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles of the active theme. See ThemedStyles for what each one is for.
var (
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title lipgloss.Style

	ListArea    lipgloss.Style
	Placeholder lipgloss.Style
	TaskRow     lipgloss.Style
	TaskChecked lipgloss.Style
	Checkbox    lipgloss.Style
	CursorRow   lipgloss.Style

	ActionBar      lipgloss.Style
	ActionKey      lipgloss.Style
	ActionLabel    lipgloss.Style
	ActionDisabled lipgloss.Style

	Banner lipgloss.Style

	DialogBox    lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	HelpKey lipgloss.Style
)

// Layout constants shared by the view and the model.
const (
	// TitleHeight is the title text plus its bottom border.
	TitleHeight = 2
	// ActionBarHeight is the action bar text plus its top border.
	ActionBarHeight = 2
	// BannerHeight is the deletion banner line.
	BannerHeight = 1
	// MinListHeight keeps at least this many rows visible on tiny terminals.
	MinListHeight = 1
	// DialogWidth is the preferred width of the add dialog.
	DialogWidth = 50
)

// Checkbox glyphs.
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)
