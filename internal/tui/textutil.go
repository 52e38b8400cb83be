package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateEnd shortens s to at most limit display cells, appending an
// ellipsis if truncation occurs. Width-aware so CJK titles don't
// overflow the tab bar.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, limit-1, "") + "…"
}

// clipLine hard-clips a (possibly styled) line to the terminal width.
func clipLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
