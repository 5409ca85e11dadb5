// Package util provides small helpers shared by the TUI packages.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to text cut by TruncateANSI.
const Ellipsis = "..."

// TruncateANSI truncates s to maxWidth visual columns. It handles ANSI escape
// codes and wide characters. When there is room, the cut is marked with
// Ellipsis; narrower widths are hard-cut.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return ansi.Truncate(s, maxWidth, "")
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
