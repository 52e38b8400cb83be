package render

import (
	"errors"
	"fmt"
)

// Renderer produces the display lines for a page at a given width. The
// section may be empty. Implementations must be safe to call repeatedly;
// the session re-renders eagerly on every tab switch and resize.
type Renderer interface {
	Render(name, section string, width int) ([]string, error)
}

// NotFoundError reports that the requested page does not exist. It is the
// only recoverable renderer failure: the session surfaces the message in
// the status line instead of terminating.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a recoverable page-not-found failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
