package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Action labels on the bottom bar.
const (
	ActionAddLabel    = "add task"
	ActionDeleteLabel = "delete completed"
)

// RenderActionBar renders the bottom bar with the add and delete triggers on
// the left and a done/total count on the right.
func RenderActionBar(state *State, width int) string {
	if state == nil {
		state = &State{}
	}

	left := strings.Join([]string{
		renderAction("a", ActionAddLabel, true),
		renderAction("d", ActionDeleteLabel, true),
	}, "  ")

	right := styles.Muted.Render(fmt.Sprintf("%d/%d done", state.CompletedCount(), len(state.Tasks)))

	// ActionBar pads one column on each side.
	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	var line string
	if gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	} else {
		line = util.TruncateANSI(left, inner)
	}

	return styles.ActionBar.Width(width).Render(line)
}

// renderAction renders "[key] label", muted when disabled.
func renderAction(key, label string, enabled bool) string {
	if !enabled {
		return styles.ActionDisabled.Render("[" + key + "] " + label)
	}
	return styles.ActionKey.Render("["+key+"]") + " " + styles.ActionLabel.Render(label)
}
