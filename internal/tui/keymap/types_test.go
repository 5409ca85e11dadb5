package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name:     "simple rune match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      runeKey('j'),
			expected: true,
		},
		{
			name:     "simple rune mismatch",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      runeKey('k'),
			expected: false,
		},
		{
			name:     "runes are case sensitive",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'g'},
			msg:      runeKey('G'),
			expected: false,
		},
		{
			name:     "special key match",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			expected: true,
		},
		{
			name:     "special key mismatch",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEsc},
			expected: false,
		},
		{
			name:     "space key",
			binding:  KeyBinding{KeyType: tea.KeySpace},
			msg:      tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			expected: true,
		},
		{
			name:     "alt modifier match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: true,
		},
		{
			name:     "alt pressed but not bound",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: false,
		},
		{
			name:     "catch-all rune binding",
			binding:  KeyBinding{KeyType: tea.KeyRunes},
			msg:      runeKey('z'),
			expected: true,
		},
		{
			name:     "multi-rune input",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'd'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("done")},
			expected: false,
		},
		{
			name:     "pasted single rune",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'd'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}, Paste: true},
			expected: false,
		},
		{
			name:     "rune binding with empty runes",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'a'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestKeymapGetBinding(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		mode  Mode
		want  Command
		found bool
	}{
		{"a opens dialog", runeKey('a'), ModeList, CmdOpenAddDialog, true},
		{"plus opens dialog", runeKey('+'), ModeList, CmdOpenAddDialog, true},
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ModeList, CmdToggleTask, true},
		{"x toggles", runeKey('x'), ModeList, CmdToggleTask, true},
		{"enter toggles in list", tea.KeyMsg{Type: tea.KeyEnter}, ModeList, CmdToggleTask, true},
		{"d deletes", runeKey('d'), ModeList, CmdDeleteCompleted, true},
		{"D deletes", runeKey('D'), ModeList, CmdDeleteCompleted, true},
		{"j moves down", runeKey('j'), ModeList, CmdCursorDown, true},
		{"up arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, ModeList, CmdCursorUp, true},
		{"g goes to top", runeKey('g'), ModeList, CmdCursorTop, true},
		{"G goes to bottom", runeKey('G'), ModeList, CmdCursorBottom, true},
		{"? toggles help", runeKey('?'), ModeList, CmdToggleHelp, true},
		{"q quits from list", runeKey('q'), ModeList, CmdQuit, true},
		{"ctrl+c quits from list", tea.KeyMsg{Type: tea.KeyCtrlC}, ModeList, CmdQuit, true},
		{"unbound key in list", runeKey('z'), ModeList, "", false},

		{"enter confirms in dialog", tea.KeyMsg{Type: tea.KeyEnter}, ModeAddDialog, CmdConfirmAdd, true},
		{"esc cancels dialog", tea.KeyMsg{Type: tea.KeyEsc}, ModeAddDialog, CmdCancelAdd, true},
		{"ctrl+c quits from dialog", tea.KeyMsg{Type: tea.KeyCtrlC}, ModeAddDialog, CmdQuit, true},
		{"q is text in dialog", runeKey('q'), ModeAddDialog, "", false},
		{"a is text in dialog", runeKey('a'), ModeAddDialog, "", false},

		{"unknown mode", runeKey('a'), Mode("nope"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, found := km.GetBinding(tt.msg, tt.mode)
			if found != tt.found || cmd != tt.want {
				t.Errorf("GetBinding() = (%q, %v), want (%q, %v)", cmd, found, tt.want, tt.found)
			}
		})
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods     Modifier
		expected string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl+"},
		{ModAlt, "alt+"},
		{ModShift, "shift+"},
		{ModCtrl | ModAlt, "ctrl+alt+"},
		{ModCtrl | ModAlt | ModShift, "ctrl+alt+shift+"},
	}

	for _, tt := range tests {
		if result := tt.mods.String(); result != tt.expected {
			t.Errorf("Modifier.String() = %q, expected %q", result, tt.expected)
		}
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding  KeyBinding
		expected string
	}{
		{KeyBinding{KeyType: tea.KeyEnter}, "enter"},
		{KeyBinding{KeyType: tea.KeyCtrlC}, "ctrl+c"},
		{KeyBinding{KeyType: tea.KeySpace}, "space"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'}, "j"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.binding.String(); result != tt.expected {
				t.Errorf("KeyBinding.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestParseKeySpec(t *testing.T) {
	tests := []struct {
		spec        string
		wantKeyType tea.KeyType
		wantRune    rune
		wantMods    Modifier
		wantErr     bool
	}{
		{"enter", tea.KeyEnter, 0, ModNone, false},
		{"esc", tea.KeyEsc, 0, ModNone, false},
		{"escape", tea.KeyEsc, 0, ModNone, false},
		{"space", tea.KeySpace, 0, ModNone, false},
		{"shift+tab", tea.KeyShiftTab, 0, ModNone, false},
		{"j", tea.KeyRunes, 'j', ModNone, false},
		{"+", tea.KeyRunes, '+', ModNone, false},
		{"ctrl+c", tea.KeyCtrlC, 0, ModNone, false},
		{"alt+x", tea.KeyRunes, 'x', ModAlt, false},
		{"ctrl+1", 0, 0, ModNone, true},
		{"bogus", 0, 0, ModNone, true},
		{"", 0, 0, ModNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			keyType, r, mods, err := ParseKeySpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeySpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if keyType != tt.wantKeyType {
				t.Errorf("ParseKeySpec(%q) keyType = %v, want %v", tt.spec, keyType, tt.wantKeyType)
			}
			if r != tt.wantRune {
				t.Errorf("ParseKeySpec(%q) rune = %q, want %q", tt.spec, r, tt.wantRune)
			}
			if mods != tt.wantMods {
				t.Errorf("ParseKeySpec(%q) mods = %v, want %v", tt.spec, mods, tt.wantMods)
			}
		})
	}
}

func TestBindPanicsOnBadSpec(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("bind should panic on an invalid spec")
		}
	}()
	bind("not-a-key", CmdQuit, "quit", "Application")
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()

	bindings := km.GetBindingsForCommand(CmdToggleTask, ModeList)
	if len(bindings) != 3 {
		t.Fatalf("expected 3 toggle bindings, got %d", len(bindings))
	}
	for _, b := range bindings {
		if b.Command != CmdToggleTask {
			t.Errorf("binding %s has command %s", b, b.Command)
		}
	}

	if got := km.GetBindingsForCommand(CmdToggleTask, ModeAddDialog); len(got) != 0 {
		t.Errorf("toggle should not be bound in the dialog, got %v", got)
	}
}

func TestGetCategories(t *testing.T) {
	km := DefaultKeymap()

	got := km.GetCategories(ModeList)
	want := []string{"Tasks", "Navigation", "Application"}
	if len(got) != len(want) {
		t.Fatalf("GetCategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetCategories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if km.GetCategories(Mode("missing")) != nil {
		t.Error("unknown mode should have no categories")
	}
}
