package session

// Action is one already-decoded user or system intent fed into the
// reducer. The tui package maps raw key events to these; tests drive
// the reducer with them directly.
type Action interface{ isAction() }

type (
	// Quit terminates the session.
	Quit struct{}
	// ScrollUp moves the viewport up by Lines.
	ScrollUp struct{ Lines int }
	// ScrollDown moves the viewport down by Lines.
	ScrollDown struct{ Lines int }

	PageUp       struct{}
	PageDown     struct{}
	HalfPageUp   struct{}
	HalfPageDown struct{}
	GoTop        struct{}
	GoBottom     struct{}

	// Resize carries the new terminal geometry; the active document is
	// re-rendered at the new width.
	Resize struct {
		Width  int
		Height int
	}

	TabLeft  struct{}
	TabRight struct{}

	EnterHelp struct{}
	ExitHelp  struct{}

	EnterCommandMode struct{}
	CommandChar      struct{ Char rune }
	CommandBackspace struct{}
	CommandSubmit    struct{}
	CommandCancel    struct{}

	EnterSearchMode struct{}
	SearchChar      struct{ Char rune }
	SearchBackspace struct{}
	SearchSubmit    struct{}
	SearchCancel    struct{}
	SearchNext      struct{}
	SearchPrev      struct{}
	SearchClear     struct{}
)

func (Quit) isAction()             {}
func (ScrollUp) isAction()         {}
func (ScrollDown) isAction()       {}
func (PageUp) isAction()           {}
func (PageDown) isAction()         {}
func (HalfPageUp) isAction()       {}
func (HalfPageDown) isAction()     {}
func (GoTop) isAction()            {}
func (GoBottom) isAction()         {}
func (Resize) isAction()           {}
func (TabLeft) isAction()          {}
func (TabRight) isAction()         {}
func (EnterHelp) isAction()        {}
func (ExitHelp) isAction()         {}
func (EnterCommandMode) isAction() {}
func (CommandChar) isAction()      {}
func (CommandBackspace) isAction() {}
func (CommandSubmit) isAction()    {}
func (CommandCancel) isAction()    {}
func (EnterSearchMode) isAction()  {}
func (SearchChar) isAction()       {}
func (SearchBackspace) isAction()  {}
func (SearchSubmit) isAction()     {}
func (SearchCancel) isAction()     {}
func (SearchNext) isAction()       {}
func (SearchPrev) isAction()       {}
func (SearchClear) isAction()      {}

// shouldClearStatus: a transient status survives only pure resizes and
// the quit intent; anything the user actively does dismisses it.
func shouldClearStatus(action Action) bool {
	switch action.(type) {
	case Resize, Quit:
		return false
	default:
		return true
	}
}
