package render

import (
	"errors"
	"os/exec"

	"github.com/mdsn/manifold/internal/debuglog"
)

// Interpretation is the result of classifying a multi-token argument
// list: either the first token is a section shared by the remaining
// pages, or every token is an independent page name.
type Interpretation struct {
	Section string
	Pages   []string
}

// SectionProber answers whether a page resolves under a section. It is
// the only external question classification asks; probe failures are
// infrastructure faults, not "page missing".
type SectionProber interface {
	ExistsInSection(section, page string) (bool, error)
}

// ClassifyArgs decides how to read a 2+ token argument list. The first
// token is treated as a section as soon as any of the remaining pages
// resolves under it; requiring all pages to resolve would silently
// reshuffle batch opens when a single page is missing from the section.
func ClassifyArgs(prober SectionProber, args []string) (Interpretation, error) {
	if len(args) == 0 {
		return Interpretation{}, nil
	}
	if len(args) == 1 {
		return Interpretation{Pages: []string{args[0]}}, nil
	}

	candidate := args[0]
	pages := args[1:]

	anyInSection := false
	for _, page := range pages {
		ok, err := prober.ExistsInSection(candidate, page)
		if err != nil {
			return Interpretation{}, err
		}
		if ok {
			anyInSection = true
			break
		}
	}

	if anyInSection {
		debuglog.Debugf("classify: %q is a section for %v", candidate, pages)
		return Interpretation{Section: candidate, Pages: append([]string(nil), pages...)}, nil
	}
	return Interpretation{Pages: append([]string(nil), args...)}, nil
}

// ManProber probes sections by asking man(1) for the page's source path.
type ManProber struct {
	Binary string
}

func NewManProber(binary string) *ManProber {
	return &ManProber{Binary: binary}
}

func (p *ManProber) ExistsInSection(section, page string) (bool, error) {
	binary := p.Binary
	if binary == "" {
		binary = "man"
	}
	cmd := exec.Command(binary, "-w", "-S", section, page)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
