package man

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsn/manifold/internal/render"
)

type stubRenderer struct {
	calls int
	lines []string
	err   error
}

func (r *stubRenderer) Render(name, section string, width int) ([]string, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.lines != nil {
		return r.lines, nil
	}
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = name
	}
	return lines, nil
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "ls", NewDocument("ls", "").Title())
	assert.Equal(t, "read(2)", NewDocument("read", "2").Title())
}

func TestEnsureRenderCachesByWidth(t *testing.T) {
	renderer := &stubRenderer{}
	doc := NewDocument("ls", "")

	require.NoError(t, doc.EnsureRender(renderer, 80))
	require.NoError(t, doc.EnsureRender(renderer, 80))
	assert.Equal(t, 1, renderer.calls, "same width should reuse the cache")

	require.NoError(t, doc.EnsureRender(renderer, 100))
	assert.Equal(t, 2, renderer.calls, "width change should re-render")
}

func TestEnsureRenderClampsWidth(t *testing.T) {
	renderer := &stubRenderer{}
	doc := NewDocument("ls", "")

	require.NoError(t, doc.EnsureRender(renderer, 0))
	require.NoError(t, doc.EnsureRender(renderer, 1))
	assert.Equal(t, 1, renderer.calls, "width 0 clamps to 1, so the second call hits the cache")
}

func TestEnsureRenderFailureLeavesCacheUntouched(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"a", "b", "c"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	failing := &stubRenderer{err: &render.NotFoundError{Message: "No manual entry for ls"}}
	err := doc.EnsureRender(failing, 120)
	require.Error(t, err)
	assert.True(t, render.IsNotFound(err))
	assert.Equal(t, []string{"a", "b", "c"}, doc.Lines())
}

func TestEnsureRenderClampsScroll(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"a", "b", "c"}}
	doc := NewDocument("ls", "")
	doc.Scroll = 99
	require.NoError(t, doc.EnsureRender(renderer, 80))
	assert.Equal(t, 2, doc.Scroll)
}

func TestEnsureRenderRerunsActiveSearch(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"foo", "bar", "foo"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	doc.UpdateSearch("foo", 0)
	require.Len(t, doc.Matches(), 2)

	wider := &stubRenderer{lines: []string{"bar", "foo"}}
	require.NoError(t, doc.EnsureRender(wider, 120))
	require.Len(t, doc.Matches(), 1)
	assert.Equal(t, 1, doc.Matches()[0].Line)
}

func TestUpdateSearchAnchorsAtStartLine(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"foo", "x", "foo", "x", "foo"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	doc.UpdateSearch("foo", 1)
	idx, ok := doc.MatchIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx, "first match at or below line 1 is the one on line 2")

	line, ok := doc.CurrentMatchLine()
	require.True(t, ok)
	assert.Equal(t, 2, line)
}

func TestUpdateSearchWrapsWhenNoMatchBelow(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"foo", "x", "x"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	doc.UpdateSearch("foo", 2)
	line, ok := doc.CurrentMatchLine()
	require.True(t, ok)
	assert.Equal(t, 0, line)
}

func TestUpdateSearchEmptyQueryClears(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"foo"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	doc.UpdateSearch("foo", 0)
	require.NotEmpty(t, doc.Matches())

	doc.UpdateSearch("", 0)
	assert.Empty(t, doc.Matches())
	assert.Equal(t, "", doc.Query())
	_, ok := doc.MatchIndex()
	assert.False(t, ok)
}

func TestMatchNavigationWrapsAround(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"foo", "foo", "foo"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	doc.UpdateSearch("foo", 0)
	start, ok := doc.MatchIndex()
	require.True(t, ok)
	require.Equal(t, 0, start)

	// k advances return to the original match.
	for i := 0; i < len(doc.Matches()); i++ {
		_, ok := doc.NextMatchLine()
		require.True(t, ok)
	}
	idx, ok := doc.MatchIndex()
	require.True(t, ok)
	assert.Equal(t, start, idx)

	// Previous from the first match wraps to the last.
	doc.UpdateSearch("foo", 0)
	line, ok := doc.PrevMatchLine()
	require.True(t, ok)
	assert.Equal(t, 2, line)
}

func TestMatchNavigationWithoutMatches(t *testing.T) {
	renderer := &stubRenderer{lines: []string{"bar"}}
	doc := NewDocument("ls", "")
	require.NoError(t, doc.EnsureRender(renderer, 80))

	_, ok := doc.NextMatchLine()
	assert.False(t, ok)
	_, ok = doc.PrevMatchLine()
	assert.False(t, ok)
}

func TestClampScrollEmptyDocument(t *testing.T) {
	doc := NewDocument("ls", "")
	doc.Scroll = 10
	doc.ClampScroll()
	assert.Equal(t, 0, doc.Scroll)
}
