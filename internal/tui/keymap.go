package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mdsn/manifold/internal/config"
)

// KeyMap is the normal-mode binding set, built from config. It
// implements help.KeyMap so the help view lists whatever the user
// actually configured.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Command      key.Binding
	Search       key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	ClearSearch  key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GoTop        key.Binding
	GoBottom     key.Binding
	TabNext      key.Binding
	TabPrev      key.Binding
}

func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit, "ctrl+c"),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(cfg.Help),
			key.WithHelp(cfg.Help, "help"),
		),
		Command: key.NewBinding(
			key.WithKeys(cfg.Command),
			key.WithHelp(cfg.Command, "command"),
		),
		Search: key.NewBinding(
			key.WithKeys(cfg.Search),
			key.WithHelp(cfg.Search, "search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys(cfg.NextMatch),
			key.WithHelp(cfg.NextMatch, "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys(cfg.PrevMatch),
			key.WithHelp(cfg.PrevMatch, "prev match"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys(cfg.ScrollUp, "up"),
			key.WithHelp(cfg.ScrollUp+"/↑", "up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(cfg.ScrollDown, "down"),
			key.WithHelp(cfg.ScrollDown+"/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn/f", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys(cfg.HalfPageUp),
			key.WithHelp(cfg.HalfPageUp, "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys(cfg.HalfPageDown),
			key.WithHelp(cfg.HalfPageDown, "half page down"),
		),
		GoTop: key.NewBinding(
			key.WithKeys(cfg.GoTop),
			key.WithHelp(cfg.GoTop, "top"),
		),
		GoBottom: key.NewBinding(
			key.WithKeys(cfg.GoBottom),
			key.WithHelp(cfg.GoBottom, "bottom"),
		),
		TabNext: key.NewBinding(
			key.WithKeys(cfg.TabNext),
			key.WithHelp(cfg.TabNext, "next tab"),
		),
		TabPrev: key.NewBinding(
			key.WithKeys(cfg.TabPrev),
			key.WithHelp(cfg.TabPrev, "prev tab"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Search, k.TabNext, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.HalfPageUp, k.HalfPageDown, k.GoTop, k.GoBottom},
		{k.TabNext, k.TabPrev, k.Command, k.Search},
		{k.NextMatch, k.PrevMatch, k.ClearSearch, k.Help, k.Quit},
	}
}
