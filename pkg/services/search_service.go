package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/cache"
	"github.com/painscope/painscope/pkg/fingerprint"
	"github.com/painscope/painscope/pkg/metrics"
	"github.com/painscope/painscope/pkg/models"
)

// forbiddenTopicChars are rejected during validation to keep topics safe
// for downstream query construction and display.
const forbiddenTopicChars = `<>{}[]\`

// SearchService handles intake, deduplication, and status lookups.
type SearchService struct {
	client  *ent.Client
	cache   *cache.Cache
	results *ResultService
}

// NewSearchService creates a new SearchService.
func NewSearchService(client *ent.Client, c *cache.Cache, results *ResultService) *SearchService {
	return &SearchService{client: client, cache: c, results: results}
}

// IntakeResponse is the outcome of Submit: either a cache hit with the
// full result, or the id and current status of the (possibly pre-existing)
// search job.
type IntakeResponse struct {
	SearchID string               `json:"searchId"`
	Status   string               `json:"status"`
	Result   *models.SearchResult `json:"result,omitempty"`
}

// StatusResponse is the outcome of GetStatus.
type StatusResponse struct {
	SearchID     string               `json:"searchId"`
	Status       string               `json:"status"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
	Result       *models.SearchResult `json:"result,omitempty"`
}

// Submit validates a search request and either returns the cached result,
// attaches the caller to an in-flight search with the same fingerprint, or
// enqueues a new search.
func (s *SearchService) Submit(ctx context.Context, req models.SearchRequest) (*IntakeResponse, error) {
	req = req.Normalized()
	req.Topic = strings.TrimSpace(req.Topic)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	fp := fingerprint.Compute(req.Topic, req.Tags, req.TimeRange, req.MinUpvotes, req.SortBy)

	// Warm hit: the full result is cached under the fingerprint. No store
	// access at all on this path.
	result, err := s.cache.GetResult(ctx, cache.ResultByFingerprintKey(fp))
	if err != nil {
		slog.Warn("Result cache lookup failed, falling back to store", "error", err)
	}
	if result != nil {
		metrics.CacheLookups.WithLabelValues("fingerprint", "hit").Inc()
		return &IntakeResponse{SearchID: result.SearchID, Status: models.StatusCompleted, Result: result}, nil
	}
	metrics.CacheLookups.WithLabelValues("fingerprint", "miss").Inc()

	// In-flight hit: the fingerprint already maps to a search id.
	winner, err := s.cache.GetMapping(ctx, fp)
	if err != nil {
		slog.Warn("Mapping cache lookup failed, falling back to store", "error", err)
	}
	if winner != "" {
		resp, err := s.statusFor(ctx, winner)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// The mapped search row is gone (purged). Drop the stale mapping
		// and enqueue a fresh search below.
		if delErr := s.cache.DeleteMapping(ctx, fp); delErr != nil {
			slog.Warn("Failed to drop stale fingerprint mapping", "error", delErr)
		}
	}

	// New search. Claim the fingerprint first so two concurrent intakes
	// with the same fingerprint insert only one row.
	searchID := uuid.New().String()
	claimed, err := s.cache.SetMappingNX(ctx, fp, searchID)
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint claim failed: %v", ErrUnavailable, err)
	}
	if !claimed {
		winner, err := s.cache.GetMapping(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("%w: fingerprint lookup failed: %v", ErrUnavailable, err)
		}
		if winner != "" {
			resp, err := s.statusFor(ctx, winner)
			if err == nil {
				return resp, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
		// The claim raced with an expiring or stale mapping. Take it over.
		if delErr := s.cache.DeleteMapping(ctx, fp); delErr != nil {
			slog.Warn("Failed to drop contested fingerprint mapping", "error", delErr)
		}
		if _, err := s.cache.SetMappingNX(ctx, fp, searchID); err != nil {
			return nil, fmt.Errorf("%w: fingerprint claim failed: %v", ErrUnavailable, err)
		}
	}

	_, err = s.client.Search.Create().
		SetID(searchID).
		SetTopic(req.Topic).
		SetTags(req.Tags).
		SetTimeRange(search.TimeRange(req.TimeRange)).
		SetSortBy(search.SortBy(req.SortBy)).
		SetMinUpvotes(req.MinUpvotes).
		Save(ctx)
	if err != nil {
		// Release the claim so a retry is not pinned to a row that was
		// never inserted.
		if delErr := s.cache.DeleteMapping(ctx, fp); delErr != nil {
			slog.Warn("Failed to release fingerprint mapping after insert failure", "error", delErr)
		}
		return nil, fmt.Errorf("%w: failed to enqueue search: %v", ErrUnavailable, err)
	}

	metrics.SearchesSubmitted.Inc()
	slog.Info("Search enqueued", "search_id", searchID, "topic", req.Topic, "fingerprint", fp)
	return &IntakeResponse{SearchID: searchID, Status: models.StatusPending}, nil
}

// GetStatus returns the current state of a search: the cached result when
// completed, otherwise the live row status. Completed results read from
// the store re-warm the cache.
func (s *SearchService) GetStatus(ctx context.Context, searchID string) (*StatusResponse, error) {
	cached, err := s.cache.GetResult(ctx, cache.ResultByIDKey(searchID))
	if err != nil {
		slog.Warn("Result cache lookup failed, falling back to store", "search_id", searchID, "error", err)
	}
	if cached != nil {
		metrics.CacheLookups.WithLabelValues("search_id", "hit").Inc()
		return &StatusResponse{SearchID: searchID, Status: models.StatusCompleted, Result: cached}, nil
	}
	metrics.CacheLookups.WithLabelValues("search_id", "miss").Inc()

	row, err := s.client.Search.Get(ctx, searchID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: search %s", ErrNotFound, searchID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load search: %v", ErrUnavailable, err)
	}

	if row.Status == search.StatusCompleted {
		result, err := s.results.Assemble(ctx, searchID)
		if err == nil {
			s.rewarmCache(ctx, row, result)
			return &StatusResponse{SearchID: searchID, Status: models.StatusCompleted, Result: result}, nil
		}
		// Completed row without a persisted result set should not happen
		// (the summary row is written before the terminal status). Degrade
		// to a bare status instead of failing the lookup.
		slog.Error("Completed search has no assembled result", "search_id", searchID, "error", err)
	}

	resp := &StatusResponse{SearchID: searchID, Status: string(row.Status)}
	if row.ErrorMessage != nil {
		resp.ErrorMessage = *row.ErrorMessage
	}
	return resp, nil
}

// statusFor maps an existing search row to an intake response, assembling
// the full result when the search already completed.
func (s *SearchService) statusFor(ctx context.Context, searchID string) (*IntakeResponse, error) {
	row, err := s.client.Search.Get(ctx, searchID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: search %s", ErrNotFound, searchID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load search: %v", ErrUnavailable, err)
	}

	if row.Status == search.StatusCompleted {
		result, err := s.results.Assemble(ctx, searchID)
		if err == nil {
			s.rewarmCache(ctx, row, result)
			return &IntakeResponse{SearchID: searchID, Status: models.StatusCompleted, Result: result}, nil
		}
		slog.Error("Completed search has no assembled result", "search_id", searchID, "error", err)
	}

	return &IntakeResponse{SearchID: searchID, Status: string(row.Status)}, nil
}

// rewarmCache writes a store-assembled result back to the cache so the
// next lookup hits. Best-effort.
func (s *SearchService) rewarmCache(ctx context.Context, row *ent.Search, result *models.SearchResult) {
	fp := fingerprint.Compute(row.Topic, row.Tags, string(row.TimeRange), row.MinUpvotes, string(row.SortBy))
	if err := s.cache.SetResult(ctx, row.ID, fp, result); err != nil {
		slog.Warn("Failed to re-warm result cache", "search_id", row.ID, "error", err)
	}
}

// validateRequest checks the intake constraints and aggregates every
// violation into one ValidationError.
func validateRequest(req models.SearchRequest) error {
	ve := NewValidationError()

	topicLen := utf8.RuneCountInString(req.Topic)
	if topicLen < 2 || topicLen > 100 {
		ve.Add("topic", "must be between 2 and 100 characters")
	}
	if strings.ContainsAny(req.Topic, forbiddenTopicChars) {
		ve.Add("topic", "contains forbidden characters")
	}

	if len(req.Tags) > 5 {
		ve.Add("tags", "at most 5 tags allowed")
	}
	for _, t := range req.Tags {
		if !models.ValidTags[t] {
			ve.Add("tags", fmt.Sprintf("invalid tag %q", t))
		}
	}

	if !models.ValidTimeRanges[req.TimeRange] {
		ve.Add("timeRange", fmt.Sprintf("invalid time range %q", req.TimeRange))
	}
	if !models.ValidSortBys[req.SortBy] {
		ve.Add("sortBy", fmt.Sprintf("invalid sort order %q", req.SortBy))
	}

	if req.MinUpvotes < 0 || req.MinUpvotes > 10000 {
		ve.Add("minUpvotes", "must be between 0 and 10000")
	}

	if ve.Any() {
		return ve
	}
	return nil
}
