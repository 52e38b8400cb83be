package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mdsn/manifold/internal/config"
)

const AppName = "manifold"

// Styles holds every lipgloss style the pager draws with, built once
// from the configured color palette.
type Styles struct {
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	Text       lipgloss.Style
	Muted      lipgloss.Style
	StatusBar  lipgloss.Style
	StatusErr  lipgloss.Style
	Prompt     lipgloss.Style
	Title      lipgloss.Style
	Highlight  lipgloss.Style
	CurrentHit lipgloss.Style
	Welcome    lipgloss.Style
}

func NewStyles(colors config.UIColors) Styles {
	return Styles{
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)).
			Background(lipgloss.Color(colors.Surface)).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)).
			Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)),

		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)).
			Padding(0, 1),
		StatusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Error)).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Primary)).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Secondary)).
			Bold(true),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Surface)).
			Background(lipgloss.Color(colors.Highlight)),
		CurrentHit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Surface)).
			Background(lipgloss.Color(colors.Current)).
			Bold(true),
		Welcome: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Muted)),
	}
}
