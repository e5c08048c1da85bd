package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "just text", "just text"},
		{"tags removed", "<p>hello <i>world</i></p>", "hello world"},
		{"entities decoded", "a &amp; b &gt; c", "a & b > c"},
		{"paragraph breaks become spaces", "first<p>second<br>third", "first second third"},
		{"whitespace collapsed", "a\n\n  b\t c", "a b c"},
		{"link markup", `see <a href="http://x.test">this</a>`, "see this"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "short", Truncate("short", 5))
	assert.Equal(t, "a", Truncate("ab", 1))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
}

func TestTruncate_RuneSafe(t *testing.T) {
	// Multi-byte runes must never be split.
	got := Truncate("héllo wörld", 6)
	assert.Equal(t, "héllo…", got)
}
