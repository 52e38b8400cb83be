package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdsn/manifold/internal/man"
	"github.com/mdsn/manifold/internal/session"
)

const maxTabTitleWidth = 24

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	if _, ok := a.sess.Mode().(session.Help); ok {
		return a.helpView()
	}

	var b strings.Builder
	b.WriteString(a.tabBarView())
	b.WriteString("\n")
	b.WriteString(a.bodyView())
	b.WriteString("\n")
	b.WriteString(a.statusView())
	return b.String()
}

func (a *App) tabBarView() string {
	tabs := a.sess.Tabs()
	if len(tabs) == 0 {
		return a.styles.TabBar.Render(a.styles.Title.Render(AppName))
	}

	parts := make([]string, 0, len(tabs))
	for i, doc := range tabs {
		title := truncateEnd(doc.Title(), maxTabTitleWidth)
		if i == a.sess.ActiveIndex() {
			parts = append(parts, a.styles.TabActive.Render(title))
		} else {
			parts = append(parts, a.styles.TabInactive.Render(title))
		}
	}
	return clipLine(lipgloss.JoinHorizontal(lipgloss.Top, parts...), a.width)
}

func (a *App) bodyView() string {
	viewport := ContentHeight(a.height)
	doc := a.sess.ActiveDocument()

	if doc == nil {
		welcome := a.styles.Welcome.Render("no pages open — try :man ls")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(viewport).
			Align(lipgloss.Center, lipgloss.Center).
			Render(welcome)
	}

	lines := doc.Lines()
	scroll := doc.Scroll
	rows := make([]string, 0, viewport)
	for i := 0; i < viewport; i++ {
		idx := scroll + i
		if idx >= len(lines) {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, a.renderLine(doc, idx, lines[idx]))
	}
	return strings.Join(rows, "\n")
}

// renderLine highlights every match on the line; the current match gets
// its own style so the eye can find it after a jump.
func (a *App) renderLine(doc *man.Document, lineIndex int, line string) string {
	query := doc.Query()
	if query == "" {
		return clipLine(line, a.width)
	}

	current := -1
	if idx, ok := doc.MatchIndex(); ok {
		current = idx
	}

	var b strings.Builder
	cursor := 0
	for matchIdx, m := range doc.Matches() {
		if m.Line != lineIndex {
			continue
		}
		if m.Start > cursor {
			b.WriteString(line[cursor:m.Start])
		}
		segment := line[m.Start:m.End]
		if matchIdx == current {
			b.WriteString(a.styles.CurrentHit.Render(segment))
		} else {
			b.WriteString(a.styles.Highlight.Render(segment))
		}
		cursor = m.End
	}
	if cursor == 0 {
		return clipLine(line, a.width)
	}
	if cursor < len(line) {
		b.WriteString(line[cursor:])
	}
	return clipLine(b.String(), a.width)
}

func (a *App) statusView() string {
	switch mode := a.sess.Mode().(type) {
	case session.Command:
		return a.styles.Prompt.Render(":") + a.styles.Text.Render(mode.Line+"█")
	case session.Search:
		return a.styles.Prompt.Render("/") + a.styles.Text.Render(mode.Line+"█")
	}

	if msg := a.sess.StatusMessage(); msg != "" {
		return a.styles.StatusBar.Render(a.styles.StatusErr.Render("✗ " + msg))
	}

	left := a.styles.Title.Render(a.sess.Title())
	position := ""
	if doc := a.sess.ActiveDocument(); doc != nil {
		position = fmt.Sprintf("line %d/%d", doc.Scroll+1, doc.LineCount())
		if query := doc.Query(); query != "" {
			if idx, ok := doc.MatchIndex(); ok {
				position += fmt.Sprintf("  /%s (%d/%d)", query, idx+1, len(doc.Matches()))
			} else {
				position += fmt.Sprintf("  /%s (no matches)", query)
			}
		}
	}
	return clipLine(a.styles.StatusBar.Render(left+"  "+a.styles.Muted.Render(position)), a.width)
}

func (a *App) helpView() string {
	header := a.styles.Title.Render(AppName + " — keys")
	body := a.help.View(a.keys)
	commands := a.styles.Muted.Render("commands: man [SECTION] NAME...  •  help  •  wipe  •  quit")
	hint := a.styles.Muted.Render("press esc to return")
	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", commands, "", hint)
	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Padding(1, 2).
		Render(content)
}
