package session

import (
	"strings"

	"github.com/mdsn/manifold/internal/render"
)

// parsedCommand is a structured command-line submission.
type parsedCommand interface{ isCommand() }

type (
	openCommand struct {
		Topics  []string
		Section string
	}
	helpCommand    struct{}
	quitCommand    struct{}
	wipeCommand    struct{}
	emptyCommand   struct{}
	unknownCommand struct{ Name string }
)

func (openCommand) isCommand()    {}
func (helpCommand) isCommand()    {}
func (quitCommand) isCommand()    {}
func (wipeCommand) isCommand()    {}
func (emptyCommand) isCommand()   {}
func (unknownCommand) isCommand() {}

// parseCommand interprets one submitted command line. Keywords are
// case-sensitive and whitespace-delimited. Multi-argument "man" lines
// go through section classification; when the classifier itself fails
// every token is treated as an independent page name.
func parseCommand(line string, prober render.SectionProber) parsedCommand {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return emptyCommand{}
	}

	keyword, args := fields[0], fields[1:]
	switch keyword {
	case "man":
		switch len(args) {
		case 0:
			return unknownCommand{Name: keyword}
		case 1:
			return openCommand{Topics: []string{args[0]}}
		default:
			interp, err := render.ClassifyArgs(prober, args)
			if err != nil {
				return openCommand{Topics: append([]string(nil), args...)}
			}
			if len(interp.Pages) == 0 {
				return unknownCommand{Name: keyword}
			}
			return openCommand{Topics: interp.Pages, Section: interp.Section}
		}
	case "help", "h":
		return helpCommand{}
	case "quit", "q":
		return quitCommand{}
	case "wipe", "w":
		return wipeCommand{}
	default:
		return unknownCommand{Name: keyword}
	}
}
