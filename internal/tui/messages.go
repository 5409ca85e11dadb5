package tui

import (
	"time"

	"github.com/Iron-Ham/tasktracker/internal/tasklist"
	"github.com/Iron-Ham/tasktracker/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// bannerExpiredMsg fires when a banner ticket's delay has elapsed.
type bannerExpiredMsg struct {
	ticket tasklist.BannerTicket
}

// themeChangedMsg carries a theme file reload from the watcher goroutine
// into the update loop.
type themeChangedMsg struct {
	change styles.ThemeChange
}

// bannerExpiryCmd waits out the ticket's delay and then reports it. A later
// delete issues a newer ticket, which makes this one stale.
func bannerExpiryCmd(ticket tasklist.BannerTicket) tea.Cmd {
	return tea.Tick(ticket.After, func(time.Time) tea.Msg {
		return bannerExpiredMsg{ticket: ticket}
	})
}
