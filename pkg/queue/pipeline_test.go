package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/ent/searchsummary"
	"github.com/painscope/painscope/pkg/analyzer"
	"github.com/painscope/painscope/pkg/hackernews"
	"github.com/painscope/painscope/pkg/services"
	"github.com/painscope/painscope/test/util"
)

// stubSource serves canned stories and comments.
type stubSource struct {
	stories  []hackernews.Story
	comments map[string][]hackernews.Comment
	err      error
}

func (s *stubSource) Search(_ context.Context, params hackernews.SearchParams) ([]hackernews.Story, error) {
	if s.err != nil {
		return nil, s.err
	}
	if params.Page > 0 {
		return nil, nil
	}
	return s.stories, nil
}

func (s *stubSource) Comments(_ context.Context, storyID string) ([]hackernews.Comment, error) {
	return s.comments[storyID], nil
}

// stubAnalyzer delegates to a function and counts calls.
type stubAnalyzer struct {
	fn    func() (*analyzer.Analysis, error)
	calls int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string, _ analyzer.Payload) (*analyzer.Analysis, error) {
	s.calls++
	return s.fn()
}

func fixtureSource() *stubSource {
	return &stubSource{
		stories: []hackernews.Story{
			{ID: "1", Title: "Ask HN: Docker networking woes", Points: 120, Tags: []string{"ask_hn"}, NumComments: 2},
			{ID: "2", Title: "Show HN: A bridge network debugger", Points: 80, Tags: []string{"show_hn"}, NumComments: 1},
		},
		comments: map[string][]hackernews.Comment{
			"1": {
				{ID: "c1", Text: "Bridge networks silently drop packets between containers", Points: 40, Author: "alice", StoryID: "1", Permalink: "https://news.ycombinator.com/item?id=c1"},
				{ID: "c2", Text: "DNS resolution inside compose is a constant struggle", Points: 25, Author: "bob", StoryID: "1", Permalink: "https://news.ycombinator.com/item?id=c2"},
			},
			"2": {
				{ID: "c3", Text: "I gave up and run everything with host networking", Points: 10, Author: "carol", StoryID: "2", Permalink: "https://news.ycombinator.com/item?id=c3"},
			},
		},
	}
}

func validAnalysis() *analyzer.Analysis {
	return &analyzer.Analysis{
		Summary: "Container networking is the dominant pain.",
		ProblemClusters: []analyzer.ProblemCluster{
			{
				Title:        "Silent packet loss on bridge networks",
				Description:  "Containers cannot reach each other without obvious errors.",
				Severity:     8,
				MentionCount: 3,
				Examples:     []string{"Bridge networks silently drop packets"},
			},
		},
		ProductIdeas: []analyzer.ProductIdea{
			{Title: "Network path visualizer", Description: "Trace container-to-container paths.", TargetProblem: "Silent packet loss", ImpactScore: 7},
		},
		Model:      "test-model",
		TokensUsed: 321,
	}
}

func newTestPipeline(t *testing.T, source hackernews.NewsSource, an analyzer.Analyzer) (*Pipeline, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	p := NewPipeline(client, source, an, nil, nil, services.NewResultService(client), nil, nil, testPipelineConfig())
	return p, client
}

func TestExecute_HappyPath(t *testing.T) {
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) { return validAnalysis(), nil }}
	p, client := newTestPipeline(t, fixtureSource(), an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusCompleted, result.Status)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, 1, an.calls)

	points, err := client.PainPoint.Query().
		Where(painpoint.SearchIDEQ(row.ID)).
		WithQuotes().
		All(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Silent packet loss on bridge networks", points[0].Title)
	assert.Equal(t, 3, points[0].MentionsCount)
	require.NotNil(t, points[0].SeverityScore)
	assert.InDelta(t, 8.0, *points[0].SeverityScore, 0.01)

	// The cluster example prefix matches comment c1.
	require.Len(t, points[0].Edges.Quotes, 1)
	assert.Contains(t, points[0].Edges.Quotes[0].QuoteText, "silently drop packets")

	aiRow, err := client.AiAnalysis.Query().
		Where(aianalysis.SearchIDEQ(row.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Container networking is the dominant pain.", aiRow.Summary)
	assert.Equal(t, 321, aiRow.TokensUsed)

	summary, err := client.SearchSummary.Query().
		Where(searchsummary.SearchIDEQ(row.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalPosts)
	assert.Equal(t, 3, summary.TotalComments)
	assert.Equal(t, 3, summary.TotalMentions)
	assert.Equal(t, []string{"ask_hn", "show_hn"}, summary.SourceTags)
}

func TestExecute_RedeliveryIsIdempotent(t *testing.T) {
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) { return validAnalysis(), nil }}
	p, client := newTestPipeline(t, fixtureSource(), an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	first := p.Execute(ctx, row)
	require.Equal(t, search.StatusCompleted, first.Status)

	second := p.Execute(ctx, row)
	assert.Equal(t, search.StatusCompleted, second.Status)
	assert.True(t, second.AlreadyCompleted)
	assert.Equal(t, 1, an.calls)

	count, err := client.PainPoint.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecute_InvalidAnalysisFallsBack(t *testing.T) {
	// Nameless cluster fails validation on every attempt.
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) {
		return &analyzer.Analysis{ProblemClusters: []analyzer.ProblemCluster{{Severity: 5}}}, nil
	}}
	p, client := newTestPipeline(t, fixtureSource(), an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusCompleted, result.Status)
	assert.Equal(t, 3, an.calls)

	// Tag-derived fallback pain points, no stored analysis.
	points, err := client.PainPoint.Query().
		Order(ent.Asc(painpoint.FieldSourceTag)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "Discussions in ask_hn", points[0].Title)
	assert.Nil(t, points[0].SeverityScore)

	exists, err := client.AiAnalysis.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecute_AnalyzerRecoversAfterTransientFailures(t *testing.T) {
	an := &stubAnalyzer{}
	an.fn = func() (*analyzer.Analysis, error) {
		if an.calls < 3 {
			return nil, errors.New("upstream 503")
		}
		return validAnalysis(), nil
	}
	client, _ := util.SetupTestDatabase(t)
	cfg := testPipelineConfig()
	cfg.AnalyzerInitialBackoff = time.Millisecond
	p := NewPipeline(client, fixtureSource(), an, nil, nil, services.NewResultService(client), nil, nil, cfg)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusCompleted, result.Status)
	assert.Equal(t, 3, an.calls)

	// Attempt-internal retries never touch the queue's retry budget.
	got, err := client.Search.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RetryCount)

	exists, err := client.AiAnalysis.Query().Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_AnalyzerTransportFailure(t *testing.T) {
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) {
		return nil, errors.New("quota exceeded")
	}}
	p, client := newTestPipeline(t, fixtureSource(), an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusFailed, result.Status)
	assert.Equal(t, analysisMessage, result.Message)
	assert.Equal(t, 3, an.calls)

	// Nothing persisted for a failed attempt.
	exists, err := client.SearchSummary.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecute_SourceFailure(t *testing.T) {
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) { return validAnalysis(), nil }}
	p, client := newTestPipeline(t, &stubSource{err: errors.New("upstream 500")}, an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusFailed, result.Status)
	assert.Equal(t, genericMessage, result.Message)
	assert.Equal(t, 0, an.calls)
}

func TestExecute_NoStoriesCompletesEmpty(t *testing.T) {
	an := &stubAnalyzer{fn: func() (*analyzer.Analysis, error) { return validAnalysis(), nil }}
	p, client := newTestPipeline(t, &stubSource{}, an)
	ctx := context.Background()

	row := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing)
	})

	result := p.Execute(ctx, row)
	assert.Equal(t, search.StatusCompleted, result.Status)
	assert.Equal(t, 0, an.calls)

	summary, err := client.SearchSummary.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalPosts)
	assert.Equal(t, 0, summary.TotalMentions)
}
