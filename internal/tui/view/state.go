package view

import "github.com/Iron-Ham/tasktracker/internal/tasklist"

// State is everything the renderers need for one frame. The model fills it
// from the controller on every View call; renderers never keep their own.
type State struct {
	// Tasks in display order.
	Tasks []tasklist.Task

	// Cursor is the highlighted row. Ignored when Tasks is empty.
	Cursor int

	// ShowBanner shows the "deleted done tasks" banner.
	ShowBanner bool

	// DialogOpen shows the add dialog.
	DialogOpen bool

	// PendingDescription is the dialog's current text.
	PendingDescription string

	// InputView is the rendered text input for the dialog.
	InputView string
}

// CompletedCount returns the number of checked tasks.
func (s *State) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Checked {
			n++
		}
	}
	return n
}
