package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mdsn/manifold/internal/debuglog"
)

// ManRenderer renders pages by invoking the system man(1) binary with
// MANWIDTH pinned to the requested width. Overstrike sequences (the
// backspace bold/underline encoding man emits for dumb pagers) are
// stripped in-process, so no col(1) is needed.
type ManRenderer struct {
	// Binary is the man executable to invoke. Empty means "man".
	Binary string
}

func NewManRenderer(binary string) *ManRenderer {
	return &ManRenderer{Binary: binary}
}

func (r *ManRenderer) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "man"
}

func (r *ManRenderer) Render(name, section string, width int) ([]string, error) {
	if width < 1 {
		width = 1
	}

	args := []string{}
	if section != "" {
		args = append(args, section)
	}
	args = append(args, name)

	cmd := exec.Command(r.binary(), args...)
	cmd.Env = append(cmd.Environ(),
		"MANWIDTH="+strconv.Itoa(width),
		"MANPAGER=cat",
		"PAGER=cat",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	debuglog.Debugf("render: %s %s (width=%d)", r.binary(), strings.Join(args, " "), width)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// man exited nonzero: the page does not exist (or the
			// section is wrong). Recoverable.
			message := strings.TrimSpace(stderr.String())
			if message == "" {
				message = fmt.Sprintf("man exited with %s", exitErr)
			}
			return nil, &NotFoundError{Message: message}
		}
		return nil, fmt.Errorf("running %s: %w", r.binary(), err)
	}

	return splitLines(stripOverstrike(stdout.String())), nil
}

// stripOverstrike removes backspace overstrike sequences: "c\bc" (bold)
// and "_\bc" (underline) both collapse to the final character.
func stripOverstrike(text string) string {
	if !strings.ContainsRune(text, '\b') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && runes[i+1] == '\b' {
			// Drop this rune and the backspace; the overstruck
			// rune that follows survives.
			i++
			continue
		}
		if runes[i] == '\b' {
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// splitLines splits rendered output into display rows, dropping a single
// trailing newline so an empty document yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
