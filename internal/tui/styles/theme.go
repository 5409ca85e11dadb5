package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
)

// HelpStyles returns bubbles help styles for the active theme.
func HelpStyles() help.Styles {
	sep := Muted.Faint(true)
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       HelpKey,
		ShortDesc:      Muted,
		ShortSeparator: sep,
		FullKey:        HelpKey,
		FullDesc:       Muted,
		FullSeparator:  sep,
	}
}

// ApplyTextInput styles a text input with the active theme.
func ApplyTextInput(ti *textinput.Model) {
	ti.PromptStyle = DialogPrompt
	ti.TextStyle = Text
	ti.PlaceholderStyle = Placeholder
	ti.Cursor.Style = Primary
}
