package queue

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/pkg/analyzer"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/hackernews"
	"github.com/painscope/painscope/pkg/models"
)

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		MaxStories:  60,
		MaxPages:    3,
		HitsPerPage: 30,

		StoriesForComments:  20,
		MaxCommentsPerStory: 20,
		SnippetLen:          200,

		AnalysisMaxStories:          40,
		AnalysisMaxCommentsPerStory: 10,
		AnalysisCommentSnippetLen:   280,
		AnalysisStoryTextLen:        400,
		AnalyzerAttempts:            3,

		MaxPainPoints:         10,
		MaxQuotesPerPainPoint: 5,
		MaxQuoteLen:           800,
		QuoteMatchPrefixLen:   50,
		FallbackQuotePoolSize: 20,
	}
}

func TestClassifyFailure(t *testing.T) {
	t.Run("deadline wins over network", func(t *testing.T) {
		err := &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}
		assert.Equal(t, timeoutMessage, classifyFailure(fmt.Errorf("stories phase: %w", err)))
	})

	t.Run("cancellation is a timeout", func(t *testing.T) {
		assert.Equal(t, timeoutMessage, classifyFailure(context.Canceled))
	})

	t.Run("network error", func(t *testing.T) {
		err := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
		assert.Equal(t, networkMessage, classifyFailure(fmt.Errorf("stories phase: %w", err)))
	})

	t.Run("analyzer transport failure", func(t *testing.T) {
		err := fmt.Errorf("analysis phase: %w", fmt.Errorf("%w: %w", errAnalysisFailed, errors.New("quota exceeded")))
		assert.Equal(t, analysisMessage, classifyFailure(err))
	})

	t.Run("anything else", func(t *testing.T) {
		assert.Equal(t, genericMessage, classifyFailure(errors.New("constraint violation")))
	})
}

func storyWithTags(id string, points int, tags ...string) hackernews.Story {
	return hackernews.Story{ID: id, Title: "story " + id, Points: points, Tags: tags}
}

func TestTagFrequency(t *testing.T) {
	stories := []hackernews.Story{
		storyWithTags("1", 0, "story", "ask_hn"),
		storyWithTags("2", 0, "story", "ask_hn"),
		storyWithTags("3", 0, "story", "show_hn"),
		storyWithTags("4", 0, "story"),
		storyWithTags("5", 0, "story"),
	}

	tags, counts := tagFrequency(stories)

	// ask_hn and story both appear twice; preference order breaks the tie.
	assert.Equal(t, []string{"ask_hn", "story", "show_hn"}, tags)
	assert.Equal(t, 2, counts["ask_hn"])
	assert.Equal(t, 2, counts["story"])
	assert.Equal(t, 1, counts["show_hn"])
}

func TestBuildPainPoints_FromClusters(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	stories := []hackernews.Story{
		storyWithTags("1", 0, "story", "ask_hn"),
		storyWithTags("2", 0, "story", "ask_hn"),
		storyWithTags("3", 0, "story", "show_hn"),
	}
	analysis := &analyzer.Analysis{
		ProblemClusters: []analyzer.ProblemCluster{
			{Title: "Flaky DNS", Severity: 7, MentionCount: 5},
			{Title: "Slow builds", Severity: 4, MentionCount: 3},
			{Title: "Opaque errors", Severity: 6, MentionCount: 2},
		},
	}

	points := p.buildPainPoints(stories, analysis)
	require.Len(t, points, 3)

	// Clusters round-robin over the frequency-ordered tags.
	assert.Equal(t, "Flaky DNS", points[0].title)
	assert.Equal(t, "ask_hn", points[0].sourceTag)
	assert.Equal(t, "show_hn", points[1].sourceTag)
	assert.Equal(t, "ask_hn", points[2].sourceTag)

	require.NotNil(t, points[0].severity)
	assert.Equal(t, 7.0, *points[0].severity)
	assert.Equal(t, 5, points[0].mentions)
}

func TestBuildPainPoints_CapsAtMax(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.MaxPainPoints = 2
	p := &Pipeline{cfg: cfg}

	analysis := &analyzer.Analysis{ProblemClusters: []analyzer.ProblemCluster{
		{Title: "a", Severity: 1}, {Title: "b", Severity: 1}, {Title: "c", Severity: 1},
	}}
	points := p.buildPainPoints([]hackernews.Story{storyWithTags("1", 0, "story")}, analysis)
	assert.Len(t, points, 2)
}

func TestBuildPainPoints_TagFallback(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	stories := []hackernews.Story{
		storyWithTags("1", 0, "story", "ask_hn"),
		storyWithTags("2", 0, "story"),
		storyWithTags("3", 0, "story"),
	}

	for _, analysis := range []*analyzer.Analysis{nil, {Summary: "nothing"}} {
		points := p.buildPainPoints(stories, analysis)
		require.Len(t, points, 2)
		assert.Equal(t, "Discussions in story", points[0].title)
		assert.Equal(t, 2, points[0].mentions)
		assert.Nil(t, points[0].severity)
		assert.Equal(t, "Discussions in ask_hn", points[1].title)
	}
}

func comment(id, text string, points int) hackernews.Comment {
	return hackernews.Comment{
		ID:        id,
		Text:      text,
		Points:    points,
		Author:    "user-" + id,
		Permalink: "https://news.ycombinator.com/item?id=" + id,
	}
}

func TestAttachQuotes_PrefixMatch(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	corpus := []hackernews.Comment{
		comment("1", "I spent three days debugging DNS inside compose networks and it was awful", 10),
		comment("2", "builds take forever on our CI", 3),
	}
	points := []*painPointSpec{
		{id: "pp-1", title: "Flaky DNS"},
		{id: "pp-2", title: "Slow builds"},
	}
	analysis := &analyzer.Analysis{ProblemClusters: []analyzer.ProblemCluster{
		{Title: "Flaky DNS", Examples: []string{"I spent three days debugging DNS inside compose networks, yes really"}},
		{Title: "Slow builds", Examples: []string{"builds take forever"}},
	}}

	p.attachQuotes(points, corpus, analysis)

	require.Len(t, points[0].quotes, 1)
	assert.Equal(t, corpus[0].Text, points[0].quotes[0].text)
	assert.Equal(t, "user-1", points[0].quotes[0].author)
	assert.Equal(t, corpus[0].Permalink, points[0].quotes[0].permalink)

	require.Len(t, points[1].quotes, 1)
	assert.Equal(t, corpus[1].Text, points[1].quotes[0].text)
}

func TestAttachQuotes_CommentUsedOnce(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	corpus := []hackernews.Comment{comment("1", "the only comment around here", 1)}
	points := []*painPointSpec{{id: "pp-1"}, {id: "pp-2"}}
	analysis := &analyzer.Analysis{ProblemClusters: []analyzer.ProblemCluster{
		{Title: "a", Examples: []string{"the only comment around here"}},
		{Title: "b", Examples: []string{"the only comment around here"}},
	}}

	p.attachQuotes(points, corpus, analysis)

	assert.Len(t, points[0].quotes, 1)
	assert.Empty(t, points[1].quotes)
}

func TestAttachQuotes_FallbackRoundRobin(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	corpus := []hackernews.Comment{
		comment("1", "low", 1),
		comment("2", "high", 9),
		comment("3", "mid", 5),
	}
	points := []*painPointSpec{{id: "pp-1"}, {id: "pp-2"}}
	analysis := &analyzer.Analysis{ProblemClusters: []analyzer.ProblemCluster{
		{Title: "a", Examples: []string{"nothing in the corpus matches this"}},
		{Title: "b"},
	}}

	p.attachQuotes(points, corpus, analysis)

	// Top comments by upvotes round-robined: high→pp-1, mid→pp-2, low→pp-1.
	require.Len(t, points[0].quotes, 2)
	require.Len(t, points[1].quotes, 1)
	assert.Equal(t, "high", points[0].quotes[0].text)
	assert.Equal(t, "mid", points[1].quotes[0].text)
	assert.Equal(t, "low", points[0].quotes[1].text)
}

func TestAttachQuotes_TruncatesLongQuotes(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.MaxQuoteLen = 20
	p := &Pipeline{cfg: cfg}

	long := "this comment is much longer than the configured quote limit"
	points := []*painPointSpec{{id: "pp-1"}}
	p.attachQuotes(points, []hackernews.Comment{comment("1", long, 5)}, nil)

	require.Len(t, points[0].quotes, 1)
	assert.LessOrEqual(t, len([]rune(points[0].quotes[0].text)), 20)
}

func TestMatchExample(t *testing.T) {
	corpus := []hackernews.Comment{comment("1", "a perfectly ordinary comment about databases", 1)}

	t.Run("prefix within comment", func(t *testing.T) {
		got, ok := matchExample("a perfectly ordinary comment", corpus, map[string]bool{}, 50)
		require.True(t, ok)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("html in example is stripped before matching", func(t *testing.T) {
		_, ok := matchExample("<p>a perfectly ordinary comment</p>", corpus, map[string]bool{}, 50)
		assert.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := matchExample("completely unrelated text", corpus, map[string]bool{}, 50)
		assert.False(t, ok)
	})

	t.Run("empty example", func(t *testing.T) {
		_, ok := matchExample("  ", corpus, map[string]bool{}, 50)
		assert.False(t, ok)
	})
}

func TestBuildAnalysisPayload_Caps(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.AnalysisMaxStories = 2
	cfg.AnalysisMaxCommentsPerStory = 1
	cfg.AnalysisCommentSnippetLen = 10
	p := &Pipeline{cfg: cfg}

	stories := []hackernews.Story{
		{ID: "1", Title: "one", Tags: []string{"story"}},
		{ID: "2", Title: "two", Tags: []string{"story"}},
		{ID: "3", Title: "three", Tags: []string{"story"}},
	}
	corpus := []hackernews.Comment{
		{ID: "c1", StoryID: "1", Text: "first comment on story one"},
		{ID: "c2", StoryID: "1", Text: "second comment on story one"},
		{ID: "c3", StoryID: "2", Text: "short"},
	}

	payload := p.buildAnalysisPayload(stories, corpus)

	require.Len(t, payload.Stories, 2)
	require.Len(t, payload.Stories[0].Comments, 1)
	assert.LessOrEqual(t, len([]rune(payload.Stories[0].Comments[0])), 10)
	assert.Equal(t, []string{"short"}, payload.Stories[1].Comments)
	assert.Equal(t, models.TagStory, payload.Stories[0].Tag)
}
