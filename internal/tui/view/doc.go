// Package view renders the pieces of the task tracker screen.
//
// Every renderer is a pure function of a [State] and a width, so the model
// can compose them and tests can check them without a running program.
//
// Top to bottom the screen is:
//   - [RenderTitle]: the static title banner
//   - [TaskListView]: one row per task, or a placeholder hint when empty
//   - [RenderActionBar]: the add and delete-completed triggers
//   - [RenderBanner]: the transient deletion notice
//
// [RenderDialog] draws the add-task dialog, which the model places over the
// list while it is open.
package view
