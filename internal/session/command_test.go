package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	prober := &stubProber{sections: map[string][]string{"2": {"read"}}}

	tests := []struct {
		name string
		line string
		want parsedCommand
	}{
		{"empty", "", emptyCommand{}},
		{"whitespace only", "   \t ", emptyCommand{}},
		{"quit", "quit", quitCommand{}},
		{"quit short", "q", quitCommand{}},
		{"help", "help", helpCommand{}},
		{"help short", "h", helpCommand{}},
		{"wipe", "wipe", wipeCommand{}},
		{"wipe short", "w", wipeCommand{}},
		{"man single page", "man ls", openCommand{Topics: []string{"ls"}}},
		{"man extra whitespace", "  man   ls  ", openCommand{Topics: []string{"ls"}}},
		{"man without args", "man", unknownCommand{Name: "man"}},
		{"man section and page", "man 2 read", openCommand{Topics: []string{"read"}, Section: "2"}},
		{"man plain batch", "man ls cat", openCommand{Topics: []string{"ls", "cat"}}},
		{"unknown keyword", "bogus", unknownCommand{Name: "bogus"}},
		{"unknown keyword with args", "bogus ls", unknownCommand{Name: "bogus"}},
		{"case sensitive", "Quit", unknownCommand{Name: "Quit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommand(tt.line, prober))
		})
	}
}

func TestParseCommandProbeFailureFallsBackToPages(t *testing.T) {
	prober := &stubProber{err: errors.New("man unavailable")}

	got := parseCommand("man 2 read", prober)
	assert.Equal(t, openCommand{Topics: []string{"2", "read"}}, got)
}
