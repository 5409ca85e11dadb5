package tui

import (
	"strings"

	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// View renders the screen
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	state := m.viewState()

	var b strings.Builder
	b.WriteString(view.RenderTitle(m.width))
	b.WriteString("\n")

	if state.DialogOpen {
		dialog := view.RenderDialog(state, m.width)
		b.WriteString(lipgloss.Place(m.width, m.list.Height, lipgloss.Center, lipgloss.Center, dialog))
	} else {
		b.WriteString(styles.ListArea.Height(m.list.Height).Render(m.list.View()))
	}
	b.WriteString("\n")

	// The banner line is always reserved so the list does not jump.
	b.WriteString(lipgloss.NewStyle().Height(styles.BannerHeight).Render(view.RenderBanner(state, m.width)))
	b.WriteString("\n")

	b.WriteString(view.RenderActionBar(state, m.width))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap.Help(m.mode())))

	return b.String()
}
