// Package tasklist holds the in-memory task list and the transient UI flags
// that go with it. The Controller is the only writer; views read snapshots.
package tasklist

// Task is a single to-do item. Tasks are values: a change produces a new Task
// that replaces the old one at the same position.
type Task struct {
	// ID is assigned at creation and survives every copy of the task.
	ID          uint64
	Description string
	Checked     bool
}

// WithChecked returns a copy of t with Checked set.
func (t Task) WithChecked(checked bool) Task {
	t.Checked = checked
	return t
}
