// Package htmltext normalizes HN comment HTML into plain text suitable
// for quotes, event snippets, and analyzer transcripts.
package htmltext

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Strip removes HTML tags, decodes entities, and collapses whitespace.
// Paragraph breaks (<p>, <br>) become single spaces.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most max runes, appending an ellipsis when cut.
// max must be > 1; a max at or below the ellipsis length returns a plain cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
