package tui

import (
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// listWidth is the content width inside the list area's padding.
func (m Model) listWidth() int {
	return max(m.width-styles.ListArea.GetHorizontalFrameSize(), 1)
}

// listHeight is the number of task rows that fit between the title and the
// bottom chrome.
func (m Model) listHeight() int {
	chrome := styles.TitleHeight + styles.BannerHeight + styles.ActionBarHeight + m.helpHeight()
	return max(m.height-chrome, styles.MinListHeight)
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keymap.Help(m.mode())))
}

// resize fits the viewport, help and input to the current window.
func (m *Model) resize() {
	m.help.Width = m.width
	m.list.Width = m.listWidth()
	m.list.Height = m.listHeight()

	// Dialog border, padding and the prompt.
	m.input.Width = max(styles.DialogWidth-8-lipgloss.Width(m.input.Prompt), 1)
	m.syncList()
}

// syncList re-renders the rows into the viewport and scrolls the cursor
// into view.
func (m *Model) syncList() {
	m.cursor = util.Clamp(m.cursor, 0, m.tasks.Len()-1)
	m.list.SetContent(m.listView.Render(m.viewState(), m.list.Width))

	if m.tasks.Len() == 0 || m.list.Height <= 0 {
		m.list.GotoTop()
		return
	}
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}
