package view

import (
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/tasklist"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// PlaceholderText is shown in place of the list when there are no tasks.
const PlaceholderText = "press 'a' to add a task"

// TaskListView renders the task rows.
type TaskListView struct{}

// NewTaskListView creates a new TaskListView instance.
func NewTaskListView() *TaskListView {
	return &TaskListView{}
}

// Render renders the list content for a viewport of the given width. The
// result has exactly one line per task, so row i is line i.
func (v *TaskListView) Render(state *State, width int) string {
	if state == nil || len(state.Tasks) == 0 {
		return styles.Placeholder.Render(util.TruncateANSI(PlaceholderText, width))
	}

	lines := make([]string, len(state.Tasks))
	for i, task := range state.Tasks {
		lines[i] = v.renderRow(task, i == state.Cursor, width)
	}
	return strings.Join(lines, "\n")
}

// renderRow renders "[ ] description", with the description cut to fit.
func (v *TaskListView) renderRow(task tasklist.Task, selected bool, width int) string {
	box := styles.CheckboxUnchecked
	if task.Checked {
		box = styles.CheckboxChecked
	}

	// checkbox + one space
	descWidth := width - len(box) - 1
	desc := util.TruncateANSI(task.Description, descWidth)

	if selected {
		return cursorRowStyle(task).Width(width).Render(box + " " + desc)
	}

	descStyle := styles.TaskRow
	if task.Checked {
		descStyle = styles.TaskChecked
	}
	return styles.Checkbox.Render(box) + " " + descStyle.Render(desc)
}

// cursorRowStyle keeps checked tasks muted while they are highlighted.
func cursorRowStyle(task tasklist.Task) lipgloss.Style {
	if !task.Checked {
		return styles.CursorRow
	}
	return styles.CursorRow.
		Foreground(styles.TaskChecked.GetForeground()).
		Strikethrough(true)
}
