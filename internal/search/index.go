// Package search provides case-insensitive substring search over the
// flattened memory/session index, with snippet extraction and match
// highlighting.
package search

import (
	"html"
	"regexp"
	"strings"

	"github.com/missionctl/missionctl/internal/models"
)

const (
	// MaxResults caps how many matches are returned per query.
	MaxResults = 50

	snippetBefore = 50
	snippetAfter  = 100
)

// Result is one matching document with an HTML-safe highlighted snippet.
type Result struct {
	File    string `json:"file"`
	Type    string `json:"type"`
	Snippet string `json:"snippet"`
}

// Index holds the searchable documents in load order.
type Index struct {
	docs []models.SearchDocument
}

// NewIndex builds an index over docs. The slice is not copied; documents are
// read-only after load.
func NewIndex(docs []models.SearchDocument) *Index {
	return &Index{docs: docs}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.docs) }

// Search returns up to MaxResults documents whose content contains query
// (case-insensitive), in index order, plus the total match count. An empty
// or whitespace-only query matches nothing; callers distinguish that state
// before calling.
func (ix *Index) Search(query string) ([]Result, int) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0
	}
	// Match case-insensitively against the original text. Offsets from a
	// lowered copy would be wrong: ToLower can change rune byte lengths.
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var results []Result
	total := 0
	for _, doc := range ix.docs {
		loc := re.FindStringIndex(doc.Content)
		if loc == nil {
			continue
		}
		total++
		if len(results) < MaxResults {
			results = append(results, Result{
				File:    doc.File,
				Type:    doc.Type,
				Snippet: snippet(doc.Content, re, loc),
			})
		}
	}
	return results, total
}

// snippet extracts a window around the first match at loc and returns it
// HTML-escaped with every case-insensitive occurrence of the query wrapped
// in <mark> tags. The window spans 50 bytes before the match to 100 bytes
// past it, clamped to the content; clamped edges gain an ellipsis.
func snippet(content string, re *regexp.Regexp, loc []int) string {
	start := loc[0] - snippetBefore
	if start < 0 {
		start = 0
	}
	end := loc[1] + snippetAfter
	if end > len(content) {
		end = len(content)
	}

	out := highlight(content[start:end], re)
	if start > 0 {
		out = "..." + out
	}
	if end < len(content) {
		out += "..."
	}
	return out
}

// highlight escapes s and wraps each match of re in a <mark> element. The
// match bounds come from the original text, so case folding that changes a
// rune's byte length cannot shift them.
func highlight(s string, re *regexp.Regexp) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		b.WriteString(html.EscapeString(s[last:m[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(s[m[0]:m[1]]))
		b.WriteString("</mark>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(s[last:]))
	return b.String()
}
