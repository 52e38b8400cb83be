package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders pages from markdown files under a local docs
// directory, for systems without man(1) or for project documentation.
// A page named "ls" resolves to "<dir>/ls.md"; with a section set it
// first tries "<dir>/<section>/ls.md".
type MarkdownRenderer struct {
	Dir string
}

func NewMarkdownRenderer(dir string) *MarkdownRenderer {
	return &MarkdownRenderer{Dir: dir}
}

func (r *MarkdownRenderer) Render(name, section string, width int) ([]string, error) {
	if width < 1 {
		width = 1
	}

	path, err := r.resolve(name, section)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFoundf("no document for %s", name)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(string(source))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	return splitLines(strings.TrimRight(rendered, "\n")), nil
}

func (r *MarkdownRenderer) resolve(name, section string) (string, error) {
	if r.Dir == "" {
		return "", fmt.Errorf("markdown renderer has no docs directory configured")
	}
	candidates := []string{}
	if section != "" {
		candidates = append(candidates, filepath.Join(r.Dir, section, name+".md"))
	}
	candidates = append(candidates, filepath.Join(r.Dir, name+".md"))

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	if section != "" {
		return "", notFoundf("no document for %s in section %s", name, section)
	}
	return "", notFoundf("no document for %s", name)
}
