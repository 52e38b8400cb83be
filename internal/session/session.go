package session

import (
	"fmt"

	"github.com/mdsn/manifold/internal/debuglog"
	"github.com/mdsn/manifold/internal/man"
	"github.com/mdsn/manifold/internal/render"
)

// Outcome tells the caller whether to keep running after an Apply.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

// Session is the whole pager state: the ordered tab list, the active
// index, the interpreter mode and a transient status message. It is
// single-threaded; all mutation goes through Apply, invoked once per
// input event.
type Session struct {
	tabs   []*man.Document
	active int
	mode   Mode
	status string
	prober render.SectionProber
}

// New returns an empty session: no tabs open, normal mode.
func New(prober render.SectionProber) *Session {
	return &Session{mode: Normal{}, prober: prober}
}

func (s *Session) HasTabs() bool            { return len(s.tabs) > 0 }
func (s *Session) Tabs() []*man.Document    { return s.tabs }
func (s *Session) ActiveIndex() int         { return s.active }
func (s *Session) Mode() Mode               { return s.mode }
func (s *Session) StatusMessage() string    { return s.status }
func (s *Session) SetStatus(message string) { s.status = message }

// ActiveDocument returns the active tab, or nil for an empty session.
func (s *Session) ActiveDocument() *man.Document {
	if s.active < 0 || s.active >= len(s.tabs) {
		return nil
	}
	return s.tabs[s.active]
}

// Title is the active document's tab label, or the program name for an
// empty session.
func (s *Session) Title() string {
	doc := s.ActiveDocument()
	if doc == nil {
		return "Manifold"
	}
	return doc.Title()
}

// Lines returns the active document's rendered lines.
func (s *Session) Lines() []string {
	if doc := s.ActiveDocument(); doc != nil {
		return doc.Lines()
	}
	return nil
}

// Scroll returns the active document's scroll offset.
func (s *Session) Scroll() int {
	if doc := s.ActiveDocument(); doc != nil {
		return doc.Scroll
	}
	return 0
}

// Query returns the active document's search query.
func (s *Session) Query() string {
	if doc := s.ActiveDocument(); doc != nil {
		return doc.Query()
	}
	return ""
}

// Apply runs one intent against the session. Errors returned here are
// non-recoverable renderer faults; recoverable failures have already
// been converted into the status message.
func (s *Session) Apply(action Action, r render.Renderer, width, viewportHeight int) (Outcome, error) {
	if s.status != "" && shouldClearStatus(action) {
		s.status = ""
	}

	switch act := action.(type) {
	case Quit:
		return Terminate, nil
	case ScrollUp:
		s.scrollUp(act.Lines)
	case ScrollDown:
		s.scrollDown(act.Lines, viewportHeight)
	case PageUp:
		s.scrollUp(viewportHeight)
	case PageDown:
		s.scrollDown(viewportHeight, viewportHeight)
	case HalfPageUp:
		s.scrollUp(halfPage(viewportHeight))
	case HalfPageDown:
		s.scrollDown(halfPage(viewportHeight), viewportHeight)
	case GoTop:
		if doc := s.ActiveDocument(); doc != nil {
			doc.Scroll = 0
		}
	case GoBottom:
		if doc := s.ActiveDocument(); doc != nil {
			doc.Scroll = s.maxScroll(viewportHeight)
		}
	case Resize:
		if err := s.ResizeActive(r, width, viewportHeight); err != nil {
			return Continue, err
		}
	case TabLeft:
		if err := s.cycleTab(-1, r, width, viewportHeight); err != nil {
			return Continue, err
		}
	case TabRight:
		if err := s.cycleTab(1, r, width, viewportHeight); err != nil {
			return Continue, err
		}
	case EnterHelp:
		s.mode = Help{}
	case ExitHelp:
		s.mode = Normal{}
	case EnterCommandMode:
		s.mode = Command{}
	case CommandChar:
		if mode, ok := s.mode.(Command); ok {
			mode.Line += string(act.Char)
			s.mode = mode
		}
	case CommandBackspace:
		if mode, ok := s.mode.(Command); ok {
			mode.Line = popRune(mode.Line)
			s.mode = mode
		}
	case CommandCancel:
		s.mode = Normal{}
	case CommandSubmit:
		return s.commandSubmit(r, width, viewportHeight)
	case EnterSearchMode:
		s.enterSearchMode()
	case SearchChar:
		if mode, ok := s.mode.(Search); ok {
			mode.Line += string(act.Char)
			s.mode = mode
			s.applySearch(mode.Line, viewportHeight)
		}
	case SearchBackspace:
		if mode, ok := s.mode.(Search); ok {
			mode.Line = popRune(mode.Line)
			s.mode = mode
			s.applySearch(mode.Line, viewportHeight)
		}
	case SearchSubmit:
		if mode, ok := s.mode.(Search); ok {
			s.applySearch(mode.Line, viewportHeight)
			s.mode = Normal{}
		}
	case SearchCancel:
		if mode, ok := s.mode.(Search); ok {
			if mode.Previous != "" {
				s.applySearch(mode.Previous, viewportHeight)
			} else if doc := s.ActiveDocument(); doc != nil {
				doc.ClearSearch()
			}
			s.mode = Normal{}
		}
	case SearchNext:
		if doc := s.ActiveDocument(); doc != nil {
			if line, ok := doc.NextMatchLine(); ok {
				s.centerOnLine(line, viewportHeight)
			}
		}
	case SearchPrev:
		if doc := s.ActiveDocument(); doc != nil {
			if line, ok := doc.PrevMatchLine(); ok {
				s.centerOnLine(line, viewportHeight)
			}
		}
	case SearchClear:
		if doc := s.ActiveDocument(); doc != nil {
			doc.ClearSearch()
		}
	}

	return Continue, nil
}

// OpenPages appends one tab per topic and renders each in turn. A page
// that fails with a not-found error is removed again and the batch
// moves on; the last such message lands in the status line. Any other
// renderer error aborts the batch.
func (s *Session) OpenPages(topics []string, section string, r render.Renderer, width, viewportHeight int) error {
	var lastFailure string
	for _, topic := range topics {
		doc := man.NewDocument(topic, section)
		s.tabs = append(s.tabs, doc)
		s.active = len(s.tabs) - 1
		if err := doc.EnsureRender(r, width); err != nil {
			s.tabs = s.tabs[:len(s.tabs)-1]
			if s.active >= len(s.tabs) && len(s.tabs) > 0 {
				s.active = len(s.tabs) - 1
			}
			if render.IsNotFound(err) {
				debuglog.Infof("open %s: %v", topic, err)
				lastFailure = err.Error()
				continue
			}
			return err
		}
	}
	if lastFailure != "" {
		s.status = lastFailure
	}
	if len(s.tabs) > 0 {
		s.clampScroll(viewportHeight)
	}
	return nil
}

// ResizeActive re-renders the active document at the current width and
// re-clamps its scroll. No-op on an empty session.
func (s *Session) ResizeActive(r render.Renderer, width, viewportHeight int) error {
	doc := s.ActiveDocument()
	if doc == nil {
		return nil
	}
	if err := doc.EnsureRender(r, width); err != nil {
		return err
	}
	s.clampScroll(viewportHeight)
	return nil
}

// CloseActive removes the active tab. An empty session is a valid
// result; otherwise the active index is repaired and the newly active
// document re-rendered.
func (s *Session) CloseActive(r render.Renderer, width, viewportHeight int) error {
	if len(s.tabs) == 0 {
		return nil
	}
	s.tabs = append(s.tabs[:s.active], s.tabs[s.active+1:]...)
	if len(s.tabs) == 0 {
		s.active = 0
		return nil
	}
	if s.active >= len(s.tabs) {
		s.active = len(s.tabs) - 1
	}
	if err := s.ActiveDocument().EnsureRender(r, width); err != nil {
		return err
	}
	s.clampScroll(viewportHeight)
	return nil
}

func (s *Session) cycleTab(direction int, r render.Renderer, width, viewportHeight int) error {
	if len(s.tabs) == 0 {
		return nil
	}
	count := len(s.tabs)
	s.active = (s.active + direction + count) % count
	if err := s.ActiveDocument().EnsureRender(r, width); err != nil {
		return err
	}
	s.clampScroll(viewportHeight)
	return nil
}

func (s *Session) commandSubmit(r render.Renderer, width, viewportHeight int) (Outcome, error) {
	var line string
	if mode, ok := s.mode.(Command); ok {
		line = mode.Line
	}
	// Back to normal before execution so a command that changes mode
	// starts from a clean slate.
	s.mode = Normal{}

	switch cmd := parseCommand(line, s.prober).(type) {
	case openCommand:
		if err := s.OpenPages(cmd.Topics, cmd.Section, r, width, viewportHeight); err != nil {
			return Continue, err
		}
	case helpCommand:
		s.mode = Help{}
	case quitCommand:
		return Terminate, nil
	case wipeCommand:
		if err := s.CloseActive(r, width, viewportHeight); err != nil {
			return Continue, err
		}
	case emptyCommand:
	case unknownCommand:
		s.status = fmt.Sprintf("Unknown command '%s'", cmd.Name)
	}
	return Continue, nil
}

func (s *Session) enterSearchMode() {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	s.mode = Search{Previous: doc.Query()}
}

// applySearch re-runs the search with the in-progress query, anchored
// at the current scroll line, and recenters on the resulting match.
func (s *Session) applySearch(query string, viewportHeight int) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	doc.UpdateSearch(query, doc.Scroll)
	if line, ok := doc.CurrentMatchLine(); ok {
		s.centerOnLine(line, viewportHeight)
	}
}

func (s *Session) centerOnLine(line, viewportHeight int) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	desired := line - viewportHeight/2
	if desired < 0 {
		desired = 0
	}
	if max := s.maxScroll(viewportHeight); desired > max {
		desired = max
	}
	doc.Scroll = desired
}

func (s *Session) scrollUp(amount int) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	doc.Scroll -= amount
	if doc.Scroll < 0 {
		doc.Scroll = 0
	}
}

func (s *Session) scrollDown(amount, viewportHeight int) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	doc.Scroll += amount
	if max := s.maxScroll(viewportHeight); doc.Scroll > max {
		doc.Scroll = max
	}
}

func (s *Session) clampScroll(viewportHeight int) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	if max := s.maxScroll(viewportHeight); doc.Scroll > max {
		doc.Scroll = max
	}
}

func (s *Session) maxScroll(viewportHeight int) int {
	doc := s.ActiveDocument()
	if doc == nil || doc.LineCount() == 0 {
		return 0
	}
	visible := viewportHeight
	if visible < 1 {
		visible = 1
	}
	max := doc.LineCount() - visible
	if max < 0 {
		return 0
	}
	return max
}

func halfPage(viewportHeight int) int {
	half := viewportHeight / 2
	if half < 1 {
		half = 1
	}
	return half
}

func popRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
