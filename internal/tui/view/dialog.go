package view

import (
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
)

// DialogTitle is the heading of the add dialog.
const DialogTitle = "Add new task"

// Dialog action labels.
const (
	DialogAddLabel    = "Add"
	DialogCancelLabel = "Cancel"
)

// DialogWidth returns the outer width of the add dialog for a screen of the
// given width.
func DialogWidth(screenWidth int) int {
	w := styles.DialogWidth
	if screenWidth-2 < w {
		w = screenWidth - 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CanAdd reports whether the dialog's Add action is enabled.
func CanAdd(state *State) bool {
	return state != nil && strings.TrimSpace(state.PendingDescription) != ""
}

// RenderDialog renders the add dialog, or "" when it is closed. The Add
// action is shown disabled while the input is blank.
func RenderDialog(state *State, screenWidth int) string {
	if state == nil || !state.DialogOpen {
		return ""
	}

	width := DialogWidth(screenWidth)
	// Border (1) and horizontal padding (2) on each side.
	inner := width - 6
	if inner < 1 {
		inner = 1
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(util.TruncateANSI(DialogTitle, inner)))
	b.WriteString("\n")
	b.WriteString(state.InputView)
	b.WriteString("\n\n")
	b.WriteString(renderAction("enter", DialogAddLabel, CanAdd(state)))
	b.WriteString("  ")
	b.WriteString(renderAction("esc", DialogCancelLabel, true))

	return styles.DialogBox.Width(width - 2).Render(b.String())
}
