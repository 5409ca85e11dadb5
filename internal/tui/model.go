package tui

import (
	"github.com/Iron-Ham/tasktracker/internal/logging"
	"github.com/Iron-Ham/tasktracker/internal/tasklist"
	"github.com/Iron-Ham/tasktracker/internal/tui/keymap"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultMaxDescriptionLength caps the add dialog input when Options leaves
// it unset.
const DefaultMaxDescriptionLength = 200

// InputPlaceholder is shown in the empty add dialog input.
const InputPlaceholder = "What needs doing?"

// Model is the Bubbletea model for the task tracker screen.
type Model struct {
	tasks  *tasklist.Controller
	keymap *keymap.Keymap

	input    textinput.Model
	list     viewport.Model
	help     help.Model
	listView *view.TaskListView

	// cursor is the highlighted row; 0 when the list is empty
	cursor int

	width  int
	height int
	ready  bool

	logger *logging.Logger
}

// NewModel creates the model with an empty task list.
func NewModel(opts Options) Model {
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	limit := opts.MaxDescriptionLength
	if limit <= 0 {
		limit = DefaultMaxDescriptionLength
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = InputPlaceholder
	ti.CharLimit = limit
	styles.ApplyTextInput(&ti)

	h := help.New()
	h.Styles = styles.HelpStyles()

	return Model{
		tasks:    tasklist.NewController(logger),
		keymap:   km,
		input:    ti,
		list:     viewport.New(0, 0),
		help:     h,
		listView: view.NewTaskListView(),
		logger:   logger.WithComponent("tui"),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Tasks returns the controller backing this model.
func (m Model) Tasks() *tasklist.Controller {
	return m.tasks
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// mode reports which key bindings are active.
func (m Model) mode() keymap.Mode {
	if m.tasks.IsAddDialogOpen() {
		return keymap.ModeAddDialog
	}
	return keymap.ModeList
}

// viewState snapshots everything the renderers need.
func (m Model) viewState() *view.State {
	return &view.State{
		Tasks:              m.tasks.Tasks(),
		Cursor:             m.cursor,
		ShowBanner:         m.tasks.ShowDeletedBanner(),
		DialogOpen:         m.tasks.IsAddDialogOpen(),
		PendingDescription: m.tasks.PendingDescription(),
		InputView:          m.input.View(),
	}
}

// restyle reapplies the active theme to the bubbles components.
func (m *Model) restyle() {
	styles.ApplyTextInput(&m.input)
	m.help.Styles = styles.HelpStyles()
}
