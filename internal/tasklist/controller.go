package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/tasktracker/internal/logging"
)

// BannerDuration is how long the deletion banner stays up after the most
// recent DeleteCompleted.
const BannerDuration = 2 * time.Second

// ErrIndexOutOfRange is returned when a positional operation names a row that
// does not exist.
var ErrIndexOutOfRange = errors.New("task index out of range")

// BannerTicket identifies one scheduled banner-hide. Only the most recently
// issued ticket can hide the banner; older ones are stale.
type BannerTicket struct {
	ID    uint64
	After time.Duration
}

// Controller owns the task list, the add-dialog state and the deletion
// banner flag. It is not safe for concurrent use; callers drive it from a
// single goroutine (the Bubble Tea update loop).
type Controller struct {
	tasks              []Task
	addDialogOpen      bool
	pendingDescription string
	showDeletedBanner  bool

	nextTaskID   uint64
	bannerTicket uint64

	logger *logging.Logger
}

// NewController returns an empty controller with the dialog closed.
// logger may be nil.
func NewController(logger *logging.Logger) *Controller {
	if logger != nil {
		logger = logger.WithComponent("tasklist")
	}
	return &Controller{
		tasks:  make([]Task, 0),
		logger: logger,
	}
}

// Tasks returns a snapshot of the list in display order.
func (c *Controller) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Controller) Len() int {
	return len(c.tasks)
}

// Task returns the task at index.
func (c *Controller) Task(index int) (Task, error) {
	if err := c.checkIndex(index); err != nil {
		return Task{}, err
	}
	return c.tasks[index], nil
}

// CompletedCount returns how many tasks are currently checked.
func (c *Controller) CompletedCount() int {
	n := 0
	for _, t := range c.tasks {
		if t.Checked {
			n++
		}
	}
	return n
}

// IsAddDialogOpen reports whether the add dialog is showing.
func (c *Controller) IsAddDialogOpen() bool {
	return c.addDialogOpen
}

// PendingDescription returns the text typed into the add dialog so far.
func (c *Controller) PendingDescription() string {
	return c.pendingDescription
}

// ShowDeletedBanner reports whether the deletion banner is visible.
func (c *Controller) ShowDeletedBanner() bool {
	return c.showDeletedBanner
}

// AddTask appends a new unchecked task and closes the dialog. Blank text is
// refused silently: nothing changes and false is returned.
func (c *Controller) AddTask(text string) bool {
	description := strings.TrimSpace(text)
	if description == "" {
		c.logger.Debug("blank task description rejected")
		return false
	}

	c.nextTaskID++
	task := Task{ID: c.nextTaskID, Description: description}
	c.tasks = append(c.tasks, task)
	c.pendingDescription = ""
	c.addDialogOpen = false

	c.logger.Debug("task added", "task_id", task.ID, "count", len(c.tasks))
	return true
}

// ToggleTask replaces the task at index with a copy whose Checked is set to
// checked. Other tasks are untouched, and so is everything on error.
func (c *Controller) ToggleTask(index int, checked bool) error {
	if err := c.checkIndex(index); err != nil {
		c.logger.Warn("toggle rejected", "index", index, "error", err.Error())
		return err
	}

	c.tasks[index] = c.tasks[index].WithChecked(checked)
	c.logger.Debug("task toggled", "index", index, "task_id", c.tasks[index].ID, "checked", checked)
	return nil
}

// DeleteCompleted drops every checked task, keeping the order of the rest,
// and raises the deletion banner. The returned ticket must be passed to
// HideBanner once ticket.After has elapsed. Each call supersedes the ticket
// of the previous one, so the banner stays up until BannerDuration after
// the last delete.
func (c *Controller) DeleteCompleted() BannerTicket {
	kept := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if !t.Checked {
			kept = append(kept, t)
		}
	}
	removed := len(c.tasks) - len(kept)
	c.tasks = kept

	c.bannerTicket++
	c.showDeletedBanner = true

	c.logger.Debug("completed tasks deleted", "removed", removed, "remaining", len(kept), "ticket", c.bannerTicket)
	return BannerTicket{ID: c.bannerTicket, After: BannerDuration}
}

// HideBanner clears the deletion banner if ticket is the latest one issued.
// It reports whether the banner was hidden.
func (c *Controller) HideBanner(ticket BannerTicket) bool {
	if ticket.ID != c.bannerTicket {
		c.logger.Debug("stale banner ticket ignored", "ticket", ticket.ID, "current", c.bannerTicket)
		return false
	}
	if !c.showDeletedBanner {
		return false
	}
	c.showDeletedBanner = false
	c.logger.Debug("banner hidden", "ticket", ticket.ID)
	return true
}

// OpenAddDialog opens the add-task dialog.
func (c *Controller) OpenAddDialog() {
	c.addDialogOpen = true
}

// CancelAddDialog closes the dialog and discards whatever was typed.
func (c *Controller) CancelAddDialog() {
	c.addDialogOpen = false
	c.pendingDescription = ""
}

// SetPendingDescription records the dialog's current input.
func (c *Controller) SetPendingDescription(text string) {
	c.pendingDescription = text
}

func (c *Controller) checkIndex(index int) error {
	if index < 0 || index >= len(c.tasks) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(c.tasks))
	}
	return nil
}
