package man

import (
	"fmt"

	"github.com/mdsn/manifold/internal/render"
)

// renderCache memoizes the display lines for the width they were
// produced at. Width 0 means never rendered.
type renderCache struct {
	width int
	lines []string
}

// Document is one opened page: identity, cached render, scroll offset
// and search state. Documents are owned by the session's tab list.
type Document struct {
	name    string
	section string

	// Scroll is the zero-based first visible line. The session clamps
	// it against the viewport; after a render it never exceeds the
	// last valid line index.
	Scroll int

	cache renderCache

	query      string
	matches    []Match
	matchIndex int
}

func NewDocument(name, section string) *Document {
	return &Document{
		name:       name,
		section:    section,
		matchIndex: -1,
	}
}

func (d *Document) Name() string    { return d.name }
func (d *Document) Section() string { return d.section }

// Title renders the tab label: "name(section)" when a section is known.
func (d *Document) Title() string {
	if d.section != "" {
		return fmt.Sprintf("%s(%s)", d.name, d.section)
	}
	return d.name
}

func (d *Document) Lines() []string { return d.cache.lines }
func (d *Document) LineCount() int  { return len(d.cache.lines) }

func (d *Document) Query() string    { return d.query }
func (d *Document) Matches() []Match { return d.matches }

// MatchIndex returns the current match index, if any match is selected.
func (d *Document) MatchIndex() (int, bool) {
	if d.matchIndex < 0 || d.matchIndex >= len(d.matches) {
		return 0, false
	}
	return d.matchIndex, true
}

// EnsureRender makes the cache valid for the given width, invoking the
// renderer only when the cached width differs or nothing is cached yet.
// On renderer failure the cache is left untouched and the error is
// returned as-is; the caller decides recoverability. After a successful
// render an active search is re-run anchored at the current scroll, and
// scroll is clamped to the last line.
func (d *Document) EnsureRender(r render.Renderer, width int) error {
	if width < 1 {
		width = 1
	}
	if d.cache.width != width || len(d.cache.lines) == 0 {
		lines, err := r.Render(d.name, d.section, width)
		if err != nil {
			return err
		}
		d.cache = renderCache{width: width, lines: lines}
	}
	if d.query != "" {
		d.refreshSearch(d.Scroll)
	}
	d.ClampScroll()
	return nil
}

// ClampScroll bounds scroll to the last valid line index. The tighter
// viewport-aware bound is the session's job; this one only guarantees
// scroll points at an existing line after a render.
func (d *Document) ClampScroll() {
	if len(d.cache.lines) == 0 {
		d.Scroll = 0
		return
	}
	if max := len(d.cache.lines) - 1; d.Scroll > max {
		d.Scroll = max
	}
}

// UpdateSearch sets the active query and rebuilds the match list. An
// empty query clears all search state. The current match becomes the
// first match at or below startLine, wrapping to the first match
// overall when none qualifies.
func (d *Document) UpdateSearch(query string, startLine int) {
	if query == "" {
		d.ClearSearch()
		return
	}
	d.query = query
	d.refreshSearch(startLine)
}

// ClearSearch drops query, matches and the current index.
func (d *Document) ClearSearch() {
	d.query = ""
	d.matches = nil
	d.matchIndex = -1
}

// NextMatchLine advances the current match with wraparound and returns
// its line. Reports false when there are no matches.
func (d *Document) NextMatchLine() (int, bool) {
	count := len(d.matches)
	if count == 0 {
		d.matchIndex = -1
		return 0, false
	}
	if d.matchIndex < 0 {
		d.matchIndex = 0
	} else {
		d.matchIndex = (d.matchIndex + 1) % count
	}
	return d.matches[d.matchIndex].Line, true
}

// PrevMatchLine retreats the current match with wraparound and returns
// its line. Reports false when there are no matches.
func (d *Document) PrevMatchLine() (int, bool) {
	count := len(d.matches)
	if count == 0 {
		d.matchIndex = -1
		return 0, false
	}
	if d.matchIndex < 0 {
		d.matchIndex = 0
	} else {
		d.matchIndex = (d.matchIndex + count - 1) % count
	}
	return d.matches[d.matchIndex].Line, true
}

// CurrentMatchLine returns the line of the current match, if any.
func (d *Document) CurrentMatchLine() (int, bool) {
	if d.matchIndex < 0 || d.matchIndex >= len(d.matches) {
		return 0, false
	}
	return d.matches[d.matchIndex].Line, true
}

func (d *Document) refreshSearch(startLine int) {
	if d.query == "" {
		d.matches = nil
		d.matchIndex = -1
		return
	}
	d.matches = collectMatches(d.cache.lines, d.query)
	if len(d.matches) == 0 {
		d.matchIndex = -1
		return
	}
	d.matchIndex = 0
	for idx, m := range d.matches {
		if m.Line >= startLine {
			d.matchIndex = idx
			break
		}
	}
}
