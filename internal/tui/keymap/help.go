package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpKeyMap adapts one mode of a Keymap to bubbles' help.KeyMap. Bindings
// that share a command collapse into a single help entry ("j/down down").
type HelpKeyMap struct {
	keymap *Keymap
	mode   Mode
	short  []Command
}

var _ help.KeyMap = HelpKeyMap{}

// shortHelpCommands lists the commands shown in the one-line help, per mode.
var shortHelpCommands = map[Mode][]Command{
	ModeList:      {CmdOpenAddDialog, CmdToggleTask, CmdDeleteCompleted, CmdToggleHelp, CmdQuit},
	ModeAddDialog: {CmdConfirmAdd, CmdCancelAdd},
}

// Help returns the help.KeyMap for mode.
func (km *Keymap) Help(mode Mode) HelpKeyMap {
	return HelpKeyMap{keymap: km, mode: mode, short: shortHelpCommands[mode]}
}

// ShortHelp implements help.KeyMap.
func (h HelpKeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(h.short))
	for _, cmd := range h.short {
		if b, ok := h.binding(cmd); ok {
			bindings = append(bindings, b)
		}
	}
	return bindings
}

// FullHelp implements help.KeyMap. Each category becomes one column.
func (h HelpKeyMap) FullHelp() [][]key.Binding {
	var columns [][]key.Binding
	for _, category := range h.keymap.GetCategories(h.mode) {
		var column []key.Binding
		seen := make(map[Command]bool)
		for _, kb := range h.keymap.GetModeBindings(h.mode) {
			if kb.Category != category || seen[kb.Command] {
				continue
			}
			seen[kb.Command] = true
			if b, ok := h.binding(kb.Command); ok {
				column = append(column, b)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// binding merges every binding for cmd into one key.Binding.
func (h HelpKeyMap) binding(cmd Command) (key.Binding, bool) {
	kbs := h.keymap.GetBindingsForCommand(cmd, h.mode)
	if len(kbs) == 0 {
		return key.Binding{}, false
	}

	keys := make([]string, len(kbs))
	for i, kb := range kbs {
		keys[i] = kb.String()
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), kbs[0].Description),
	), true
}
