package services

import (
	"context"
	"fmt"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/aianalysis"
	"github.com/painscope/painscope/ent/painpoint"
	"github.com/painscope/painscope/ent/painpointquote"
	"github.com/painscope/painscope/ent/searchsummary"
	"github.com/painscope/painscope/pkg/models"
)

// ResultService assembles the canonical SearchResult payload from the
// persisted rows of a completed search.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// Assemble builds the SearchResult for a completed search. The summary row
// is written last during persistence, so its absence means the result set
// is not fully persisted yet and ErrNotFound is returned.
func (s *ResultService) Assemble(ctx context.Context, searchID string) (*models.SearchResult, error) {
	row, err := s.client.Search.Get(ctx, searchID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: search %s", ErrNotFound, searchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load search: %w", err)
	}

	summary, err := s.client.SearchSummary.Query().
		Where(searchsummary.SearchIDEQ(searchID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: no result set for search %s", ErrNotFound, searchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	points, err := s.client.PainPoint.Query().
		Where(painpoint.SearchIDEQ(searchID)).
		Order(ent.Desc(painpoint.FieldMentionsCount), ent.Asc(painpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pain points: %w", err)
	}

	pointIDs := make([]string, len(points))
	for i, p := range points {
		pointIDs[i] = p.ID
	}

	var quotes []*ent.PainPointQuote
	if len(pointIDs) > 0 {
		quotes, err = s.client.PainPointQuote.Query().
			Where(painpointquote.PainPointIDIn(pointIDs...)).
			Order(ent.Desc(painpointquote.FieldUpvotes), ent.Asc(painpointquote.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load quotes: %w", err)
		}
	}

	result := &models.SearchResult{
		SearchID:   row.ID,
		Status:     models.StatusCompleted,
		Topic:      row.Topic,
		Tags:       row.Tags,
		TimeRange:  string(row.TimeRange),
		MinUpvotes: row.MinUpvotes,
		SortBy:     string(row.SortBy),

		TotalMentions:           summary.TotalMentions,
		TotalPostsConsidered:    summary.TotalPosts,
		TotalCommentsConsidered: summary.TotalComments,
		SourceTags:              summary.SourceTags,

		PainPoints: make([]models.PainPoint, 0, len(points)),
		Quotes:     make([]models.Quote, 0, len(quotes)),
	}

	for _, p := range points {
		result.PainPoints = append(result.PainPoints, models.PainPoint{
			ID:            p.ID,
			SearchID:      p.SearchID,
			Title:         p.Title,
			SourceTag:     p.SourceTag,
			MentionsCount: p.MentionsCount,
			SeverityScore: p.SeverityScore,
		})
	}
	for _, q := range quotes {
		result.Quotes = append(result.Quotes, models.Quote{
			ID:           q.ID,
			PainPointID:  q.PainPointID,
			QuoteText:    q.QuoteText,
			AuthorHandle: q.AuthorHandle,
			Upvotes:      q.Upvotes,
			Permalink:    q.Permalink,
		})
	}

	analysis, err := s.client.AiAnalysis.Query().
		Where(aianalysis.SearchIDEQ(searchID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	if analysis != nil {
		result.Analysis = &models.Analysis{
			Summary:         analysis.Summary,
			ProblemClusters: analysis.ProblemClusters,
			ProductIdeas:    analysis.ProductIdeas,
			Model:           analysis.Model,
			TokensUsed:      analysis.TokensUsed,
		}
	}

	return result, nil
}
