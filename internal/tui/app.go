package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdsn/manifold/internal/config"
	"github.com/mdsn/manifold/internal/debuglog"
	"github.com/mdsn/manifold/internal/render"
	"github.com/mdsn/manifold/internal/session"
)

// chromeRows is the fixed vertical chrome: tab bar plus status line.
const chromeRows = 2

// ContentHeight converts a terminal height into the viewport height
// available for document text.
func ContentHeight(termHeight int) int {
	h := termHeight - chromeRows
	if h < 0 {
		return 0
	}
	return h
}

// App is the bubbletea model: it owns the session, translates key and
// resize events into session actions and draws the result. A fatal
// renderer error quits the program and is reported through Err.
type App struct {
	cfg      *config.Config
	sess     *session.Session
	renderer render.Renderer
	keys     KeyMap
	help     help.Model
	styles   Styles

	width  int
	height int

	err error
}

func NewApp(sess *session.Session, renderer render.Renderer, cfg *config.Config) *App {
	h := help.New()
	h.ShowAll = true
	return &App{
		cfg:      cfg,
		sess:     sess,
		renderer: renderer,
		keys:     NewKeyMap(cfg.Keys),
		help:     h,
		styles:   NewStyles(cfg.UI.Colors),
	}
}

// Err reports the fatal renderer error that ended the program, if any.
func (a *App) Err() error { return a.err }

// Session exposes the underlying session, mainly for tests.
func (a *App) Session() *session.Session { return a.sess }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a.apply(session.Resize{Width: msg.Width, Height: msg.Height})

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a.apply(session.Quit{})
	}

	switch a.sess.Mode().(type) {
	case session.Command:
		return a.handleLineEditKey(msg, true)
	case session.Search:
		return a.handleLineEditKey(msg, false)
	case session.Help:
		switch {
		case msg.Type == tea.KeyEsc,
			key.Matches(msg, a.keys.Help),
			key.Matches(msg, a.keys.Quit):
			return a.apply(session.ExitHelp{})
		}
		return a, nil
	default:
		return a.handleNormalKey(msg)
	}
}

func (a *App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.apply(session.Quit{})
	case key.Matches(msg, a.keys.Help):
		return a.apply(session.EnterHelp{})
	case key.Matches(msg, a.keys.Command):
		return a.apply(session.EnterCommandMode{})
	case key.Matches(msg, a.keys.Search):
		return a.apply(session.EnterSearchMode{})
	case key.Matches(msg, a.keys.NextMatch):
		return a.apply(session.SearchNext{})
	case key.Matches(msg, a.keys.PrevMatch):
		return a.apply(session.SearchPrev{})
	case key.Matches(msg, a.keys.ClearSearch):
		return a.apply(session.SearchClear{})
	case key.Matches(msg, a.keys.ScrollUp):
		return a.apply(session.ScrollUp{Lines: 1})
	case key.Matches(msg, a.keys.ScrollDown):
		return a.apply(session.ScrollDown{Lines: 1})
	case key.Matches(msg, a.keys.PageUp):
		return a.apply(session.PageUp{})
	case key.Matches(msg, a.keys.PageDown):
		return a.apply(session.PageDown{})
	case key.Matches(msg, a.keys.HalfPageUp):
		return a.apply(session.HalfPageUp{})
	case key.Matches(msg, a.keys.HalfPageDown):
		return a.apply(session.HalfPageDown{})
	case key.Matches(msg, a.keys.GoTop):
		return a.apply(session.GoTop{})
	case key.Matches(msg, a.keys.GoBottom):
		return a.apply(session.GoBottom{})
	case key.Matches(msg, a.keys.TabNext):
		return a.apply(session.TabRight{})
	case key.Matches(msg, a.keys.TabPrev):
		return a.apply(session.TabLeft{})
	}
	return a, nil
}

// handleLineEditKey feeds keystrokes into the mode-embedded line
// editor; command and search modes share the editing keys but emit
// different actions.
func (a *App) handleLineEditKey(msg tea.KeyMsg, command bool) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if command {
			return a.apply(session.CommandCancel{})
		}
		return a.apply(session.SearchCancel{})
	case tea.KeyEnter:
		if command {
			return a.apply(session.CommandSubmit{})
		}
		return a.apply(session.SearchSubmit{})
	case tea.KeyBackspace:
		if command {
			return a.apply(session.CommandBackspace{})
		}
		return a.apply(session.SearchBackspace{})
	case tea.KeySpace:
		return a.applyChar(' ', command)
	case tea.KeyRunes:
		var model tea.Model = a
		var cmd tea.Cmd
		for _, r := range msg.Runes {
			model, cmd = a.applyChar(r, command)
			if cmd != nil {
				return model, cmd
			}
		}
		return model, cmd
	}
	return a, nil
}

func (a *App) applyChar(r rune, command bool) (tea.Model, tea.Cmd) {
	if command {
		return a.apply(session.CommandChar{Char: r})
	}
	return a.apply(session.SearchChar{Char: r})
}

// apply runs one action through the session reducer with the current
// geometry. A fatal renderer error stores the diagnostic and quits.
func (a *App) apply(action session.Action) (tea.Model, tea.Cmd) {
	outcome, err := a.sess.Apply(action, a.renderer, a.width, ContentHeight(a.height))
	if err != nil {
		debuglog.Errorf("apply: %v", err)
		a.err = err
		return a, tea.Quit
	}
	if outcome == session.Terminate {
		return a, tea.Quit
	}
	return a, nil
}
