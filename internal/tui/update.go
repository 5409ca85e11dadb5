package tui

import (
	"github.com/Iron-Ham/tasktracker/internal/tui/keymap"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case bannerExpiredMsg:
		if m.tasks.HideBanner(msg.ticket) {
			m.syncList()
		}
		return m, nil

	case themeChangedMsg:
		m.applyThemeChange(msg.change)
		return m, nil
	}

	// Cursor blink and friends belong to the input while the dialog is up.
	if m.tasks.IsAddDialogOpen() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeypress resolves the key against the active mode's bindings. In
// the add dialog, unbound keys are typed into the input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()

	cmd, ok := m.keymap.GetBinding(msg, mode)
	if !ok {
		if mode == keymap.ModeAddDialog {
			return m.updateInput(msg)
		}
		return m, nil
	}

	return m.executeCommand(cmd)
}

// executeCommand runs a bound command.
func (m Model) executeCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		m.logger.Info("quit requested")
		return m, tea.Quit

	case keymap.CmdOpenAddDialog:
		m.tasks.OpenAddDialog()
		m.input.Reset()
		m.resize()
		return m, m.input.Focus()

	case keymap.CmdConfirmAdd:
		if !m.tasks.AddTask(m.input.Value()) {
			return m, nil
		}
		m.closeInput()
		m.cursor = m.tasks.Len() - 1
		m.resize()
		return m, nil

	case keymap.CmdCancelAdd:
		m.tasks.CancelAddDialog()
		m.closeInput()
		m.resize()
		return m, nil

	case keymap.CmdToggleTask:
		m.toggleCurrent()
		return m, nil

	case keymap.CmdDeleteCompleted:
		ticket := m.tasks.DeleteCompleted()
		m.syncList()
		return m, bannerExpiryCmd(ticket)

	case keymap.CmdCursorDown:
		m.cursor++
	case keymap.CmdCursorUp:
		m.cursor--
	case keymap.CmdCursorTop:
		m.cursor = 0
	case keymap.CmdCursorBottom:
		m.cursor = m.tasks.Len() - 1

	case keymap.CmdToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	m.syncList()
	return m, nil
}

// updateInput feeds a key to the text input and mirrors the result into the
// controller, which owns the pending description.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.tasks.SetPendingDescription(m.input.Value())
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Reset()
	m.input.Blur()
}

// toggleCurrent flips the checkbox of the highlighted task.
func (m *Model) toggleCurrent() {
	task, err := m.tasks.Task(m.cursor)
	if err != nil {
		// Empty list.
		return
	}
	if err := m.tasks.ToggleTask(m.cursor, !task.Checked); err != nil {
		m.logger.Warn("toggle failed", "index", m.cursor, "error", err.Error())
		return
	}
	m.syncList()
}

// applyThemeChange registers a reloaded custom theme and, if it is the one
// on screen, switches to the new colors.
func (m *Model) applyThemeChange(change styles.ThemeChange) {
	if change.Err != nil {
		m.logger.Warn("theme reload failed", "theme", string(change.Name), "error", change.Err.Error())
		return
	}

	styles.RegisterCustomTheme(change.Name, change.Theme)
	if styles.ActiveThemeName() == change.Name {
		styles.SetActiveTheme(change.Name)
		m.restyle()
		m.syncList()
	}
	m.logger.Info("theme reloaded", "theme", string(change.Name))
}
