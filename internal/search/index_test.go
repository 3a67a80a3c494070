package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/internal/models"
)

func doc(file, content string) models.SearchDocument {
	return models.SearchDocument{File: file, Type: models.DocMemory, Content: content}
}

func TestSearch_BasicHighlight(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "The quick brown fox jumps")})

	results, total := ix.Search("fox")
	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	// Window covers the whole string: no ellipsis, match wrapped.
	assert.Equal(t, "The quick brown <mark>fox</mark> jumps", results[0].Snippet)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "A Fox and a fox and a FOX")})

	results, total := ix.Search("fox")
	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 3, strings.Count(results[0].Snippet, "<mark>"))
	assert.Contains(t, results[0].Snippet, "<mark>Fox</mark>")
	assert.Contains(t, results[0].Snippet, "<mark>FOX</mark>")
}

func TestSearch_EmptyQuery(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "anything")})

	results, total := ix.Search("")
	assert.Nil(t, results)
	assert.Zero(t, total)

	results, total = ix.Search("   ")
	assert.Nil(t, results)
	assert.Zero(t, total)
}

func TestSearch_NoMatches(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "nothing relevant here")})

	results, total := ix.Search("zebra")
	assert.Empty(t, results)
	assert.Zero(t, total)
}

func TestSearch_CapAndTotal(t *testing.T) {
	docs := make([]models.SearchDocument, 0, 60)
	for i := 0; i < 60; i++ {
		docs = append(docs, doc(fmt.Sprintf("doc%02d.md", i), "needle in here"))
	}
	ix := NewIndex(docs)

	results, total := ix.Search("needle")
	assert.Len(t, results, MaxResults)
	assert.Equal(t, 60, total)
	// Index order preserved.
	assert.Equal(t, "doc00.md", results[0].File)
	assert.Equal(t, "doc49.md", results[49].File)
}

func TestSnippet_ClampedWithEllipsis(t *testing.T) {
	content := strings.Repeat("x", 200) + "needle" + strings.Repeat("y", 200)
	ix := NewIndex([]models.SearchDocument{doc("big.md", content)})

	results, _ := ix.Search("needle")
	require.Len(t, results, 1)
	s := results[0].Snippet
	assert.True(t, strings.HasPrefix(s, "..."), "missing leading ellipsis: %q", s)
	assert.True(t, strings.HasSuffix(s, "..."), "missing trailing ellipsis: %q", s)
	assert.Contains(t, s, "<mark>needle</mark>")
	// 50 before + match + 100 after, plus the two ellipses and mark tags.
	assert.Contains(t, s, strings.Repeat("x", 50)+"<mark>")
}

func TestSearch_CaseWideningContent(t *testing.T) {
	// ToLower('Ⱥ') is one byte longer than 'Ⱥ' itself; offsets must come
	// from the original text or the snippet slice runs past the end.
	ix := NewIndex([]models.SearchDocument{doc("a.md", "ȺȺx")})

	results, total := ix.Search("x")
	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "ȺȺ<mark>x</mark>", results[0].Snippet)
}

func TestSearch_CaseNarrowingContent(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "İİx")})

	results, total := ix.Search("x")
	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "İİ<mark>x</mark>", results[0].Snippet)
}

func TestSearch_FoldedMatchDiffersInLength(t *testing.T) {
	// 'ⱥ' is 3 bytes, its uppercase 'Ⱥ' only 2; the highlight must span
	// the matched bytes, not the query's length.
	ix := NewIndex([]models.SearchDocument{doc("a.md", "an Ⱥ here")})

	results, total := ix.Search("ⱥ")
	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "an <mark>Ⱥ</mark> here", results[0].Snippet)
}

func TestSnippet_EscapesHTML(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", `<script>alert("hi")</script> fox`)})

	results, _ := ix.Search("fox")
	require.Len(t, results, 1)
	assert.NotContains(t, results[0].Snippet, "<script>")
	assert.Contains(t, results[0].Snippet, "&lt;script&gt;")
	assert.Contains(t, results[0].Snippet, "<mark>fox</mark>")
}

func TestSnippet_QueryNeedingEscape(t *testing.T) {
	ix := NewIndex([]models.SearchDocument{doc("a.md", "use a < b in loops")})

	results, total := ix.Search("a < b")
	require.Equal(t, 1, total)
	assert.Contains(t, results[0].Snippet, "<mark>a &lt; b</mark>")
}
