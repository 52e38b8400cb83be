package man

import "strings"

// Match is one occurrence of the active query: the line it sits on and
// the byte offsets of the matched text within that line.
type Match struct {
	Line  int
	Start int
	End   int
}

// collectMatches finds every non-overlapping literal occurrence of
// query, scanning each line left to right. Matches are ordered by line,
// then by position within the line.
func collectMatches(lines []string, query string) []Match {
	if query == "" {
		return nil
	}
	var matches []Match
	for lineIndex, line := range lines {
		offset := 0
		for {
			pos := strings.Index(line[offset:], query)
			if pos < 0 {
				break
			}
			start := offset + pos
			end := start + len(query)
			matches = append(matches, Match{Line: lineIndex, Start: start, End: end})
			offset = end
		}
	}
	return matches
}
