package man

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectMatchesOrdering(t *testing.T) {
	lines := []string{"foo bar foo", "baz", "foo"}
	matches := collectMatches(lines, "foo")

	assert.Equal(t, []Match{
		{Line: 0, Start: 0, End: 3},
		{Line: 0, Start: 8, End: 11},
		{Line: 2, Start: 0, End: 3},
	}, matches)
}

func TestCollectMatchesNonOverlapping(t *testing.T) {
	matches := collectMatches([]string{"aaaa"}, "aa")
	assert.Equal(t, []Match{
		{Line: 0, Start: 0, End: 2},
		{Line: 0, Start: 2, End: 4},
	}, matches)
}

func TestCollectMatchesEmptyQuery(t *testing.T) {
	assert.Nil(t, collectMatches([]string{"foo"}, ""))
}

func TestCollectMatchesNoLines(t *testing.T) {
	assert.Nil(t, collectMatches(nil, "foo"))
}
