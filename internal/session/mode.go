package session

// Mode is the interpreter's modal state. Exactly one is active, and
// only Command and Search carry an editable line, so a half-typed
// command can never leak into a search or vice versa.
type Mode interface{ isMode() }

type (
	// Normal is the default browsing mode.
	Normal struct{}
	// Help shows the static help view; browsing input is suppressed.
	Help struct{}
	// Command is a line of attempted-command text being edited.
	Command struct{ Line string }
	// Search is a line of attempted-query text being edited. Previous
	// snapshots the query active at entry so cancel can restore it;
	// empty means no query was active.
	Search struct {
		Line     string
		Previous string
	}
)

func (Normal) isMode()  {}
func (Help) isMode()    {}
func (Command) isMode() {}
func (Search) isMode()  {}
