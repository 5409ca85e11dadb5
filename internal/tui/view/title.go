package view

import (
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
)

// AppTitle is the text of the title banner.
const AppTitle = "Task Tracker"

// RenderTitle renders the title banner across width columns.
func RenderTitle(width int) string {
	// Title has one column of padding on each side.
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return styles.Title.Width(width).Render(util.TruncateANSI(AppTitle, inner))
}
