package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Normalization(t *testing.T) {
	base := Compute("docker networking", []string{"ask_hn", "show_hn"}, "month", 10, "relevance")

	t.Run("topic case and whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, base, Compute("  Docker NETWORKING ", []string{"ask_hn", "show_hn"}, "month", 10, "relevance"))
	})

	t.Run("tag order insensitive", func(t *testing.T) {
		assert.Equal(t, base, Compute("docker networking", []string{"show_hn", "ask_hn"}, "month", 10, "relevance"))
	})

	t.Run("tag case insensitive", func(t *testing.T) {
		assert.Equal(t, base, Compute("docker networking", []string{"Ask_HN", "SHOW_hn"}, "month", 10, "relevance"))
	})

	t.Run("different tuple different fingerprint", func(t *testing.T) {
		assert.NotEqual(t, base, Compute("docker networking", []string{"ask_hn"}, "month", 10, "relevance"))
		assert.NotEqual(t, base, Compute("docker networking", []string{"ask_hn", "show_hn"}, "week", 10, "relevance"))
		assert.NotEqual(t, base, Compute("docker networking", []string{"ask_hn", "show_hn"}, "month", 11, "relevance"))
		assert.NotEqual(t, base, Compute("docker networking", []string{"ask_hn", "show_hn"}, "month", 10, "upvotes"))
	})
}

func TestCompute_Prefix(t *testing.T) {
	fp := Compute("kubernetes", nil, "all", 0, "recency")
	assert.True(t, len(fp) > len(Prefix))
	assert.Equal(t, Prefix, fp[:len(Prefix)])
}

func TestCompute_EmptyTags(t *testing.T) {
	// nil and empty slice must produce the same fingerprint.
	assert.Equal(t,
		Compute("kubernetes", nil, "all", 0, "recency"),
		Compute("kubernetes", []string{}, "all", 0, "recency"))
}
