package view

import (
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	"github.com/Iron-Ham/tasktracker/internal/util"
)

// BannerText is the confirmation shown after completed tasks are deleted.
const BannerText = "deleted done tasks"

// RenderBanner renders the deletion banner, or "" when it is hidden.
func RenderBanner(state *State, width int) string {
	if state == nil || !state.ShowBanner {
		return ""
	}
	// Banner pads two columns on each side.
	return styles.Banner.Render(util.TruncateANSI(BannerText, width-4))
}
