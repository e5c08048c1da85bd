package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchChannel(t *testing.T) {
	assert.Equal(t, "search:abc-123", SearchChannel("abc-123"))
}

func TestNewEnvelope(t *testing.T) {
	env := newEnvelope("s-1", PhaseStories, EventTypeStoryDiscovered, StoryDiscoveredPayload{
		StoryID: "100",
		Title:   "Ask HN: Why is DNS so hard?",
	})

	assert.Equal(t, "s-1", env.SearchID)
	assert.Equal(t, PhaseStories, env.Phase)
	assert.Equal(t, EventTypeStoryDiscovered, env.EventType)

	_, err := uuid.Parse(env.ID)
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339Nano, env.CreatedAt)
	require.NoError(t, err)
}

func TestEnvelopeWireShape(t *testing.T) {
	env := newEnvelope("s-1", PhaseComments, EventTypePhaseProgress, PhaseProgressPayload{
		Current:            2,
		Total:              20,
		TotalCommentsSoFar: 35,
		Comments: []CommentSnippet{
			{CommentID: "9", Snippet: "it never works", Author: "alice", Upvotes: 4, Permalink: "https://news.ycombinator.com/item?id=9"},
		},
	})

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{"id", "search_id", "phase", "event_type", "payload", "created_at"} {
		assert.Contains(t, m, key)
	}

	payload := m["payload"].(map[string]any)
	assert.Equal(t, float64(35), payload["totalCommentsSoFar"])
	comments := payload["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Equal(t, "9", comments[0].(map[string]any)["id"])
}

func TestInjectDBEventID(t *testing.T) {
	env := newEnvelope("s-1", PhaseStories, EventTypeStoryDiscovered, StoryDiscoveredPayload{StoryID: "100"})
	envJSON, err := json.Marshal(env)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(envJSON, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, env.ID, m["id"])
	assert.NotContains(t, m, "truncated")
}

func TestTruncation(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		out, err := truncateIfNeeded(`{"id":"x"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"id":"x"}`, out)
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		env := newEnvelope("s-1", PhaseComments, EventTypePhaseProgress, PhaseProgressPayload{
			Message: strings.Repeat("x", 9000),
		})
		envJSON, err := json.Marshal(env)
		require.NoError(t, err)

		out, err := injectDBEventIDAndTruncate(envJSON, 7)
		require.NoError(t, err)
		assert.Less(t, len(out), 7900)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, env.ID, m["id"])
		assert.Equal(t, "s-1", m["search_id"])
		assert.Equal(t, EventTypePhaseProgress, m["event_type"])
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.NotContains(t, m, "payload")
	})
}
