package keymap

import "fmt"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default task tracker key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeList:      defaultListBindings(),
			ModeAddDialog: defaultAddDialogBindings(),
		},
	}
}

// bind builds a KeyBinding from a key spec. Specs are compile-time constants,
// so a bad one is a programming error.
func bind(spec string, cmd Command, description, category string) KeyBinding {
	keyType, r, mods, err := ParseKeySpec(spec)
	if err != nil {
		panic(fmt.Sprintf("keymap: %v", err))
	}
	return KeyBinding{
		KeyType:     keyType,
		Rune:        r,
		Modifiers:   mods,
		Command:     cmd,
		Description: description,
		Category:    category,
	}
}

func defaultListBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeList,
		Bindings: []KeyBinding{
			// Tasks
			bind("a", CmdOpenAddDialog, "add task", "Tasks"),
			bind("+", CmdOpenAddDialog, "add task", "Tasks"),
			bind("space", CmdToggleTask, "toggle done", "Tasks"),
			bind("x", CmdToggleTask, "toggle done", "Tasks"),
			bind("enter", CmdToggleTask, "toggle done", "Tasks"),
			bind("d", CmdDeleteCompleted, "delete completed", "Tasks"),
			bind("D", CmdDeleteCompleted, "delete completed", "Tasks"),

			// Navigation
			bind("j", CmdCursorDown, "down", "Navigation"),
			bind("down", CmdCursorDown, "down", "Navigation"),
			bind("k", CmdCursorUp, "up", "Navigation"),
			bind("up", CmdCursorUp, "up", "Navigation"),
			bind("g", CmdCursorTop, "first task", "Navigation"),
			bind("G", CmdCursorBottom, "last task", "Navigation"),

			// Application
			bind("?", CmdToggleHelp, "toggle help", "Application"),
			bind("q", CmdQuit, "quit", "Application"),
			bind("ctrl+c", CmdQuit, "quit", "Application"),
		},
	}
}

func defaultAddDialogBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeAddDialog,
		Bindings: []KeyBinding{
			bind("enter", CmdConfirmAdd, "add", "Dialog"),
			bind("esc", CmdCancelAdd, "cancel", "Dialog"),
			bind("ctrl+c", CmdQuit, "quit", "Application"),
		},
	}
}
