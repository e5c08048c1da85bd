package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/cache"
	"github.com/painscope/painscope/pkg/models"
	"github.com/painscope/painscope/test/util"
)

func newTestSearchService(t *testing.T) (*SearchService, *ent.Client, *cache.Cache) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := cache.New(rdb, 30*time.Minute)

	results := NewResultService(client)
	return NewSearchService(client, c, results), client, c
}

func validRequest() models.SearchRequest {
	return models.SearchRequest{
		Topic:      "docker networking",
		Tags:       []string{"ask_hn"},
		TimeRange:  models.TimeRangeMonth,
		MinUpvotes: 10,
		SortBy:     models.SortByRelevance,
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validateRequest(validRequest()))
	})

	t.Run("boundaries accepted", func(t *testing.T) {
		req := validRequest()
		req.Topic = "ab"
		req.MinUpvotes = 0
		require.NoError(t, validateRequest(req))

		req.Topic = strings.Repeat("a", 100)
		req.MinUpvotes = 10000
		require.NoError(t, validateRequest(req))
	})

	cases := []struct {
		name   string
		mutate func(*models.SearchRequest)
		field  string
	}{
		{"topic too short", func(r *models.SearchRequest) { r.Topic = "a" }, "topic"},
		{"topic too long", func(r *models.SearchRequest) { r.Topic = strings.Repeat("a", 101) }, "topic"},
		{"forbidden characters", func(r *models.SearchRequest) { r.Topic = "docker <script>" }, "topic"},
		{"backslash forbidden", func(r *models.SearchRequest) { r.Topic = `docker\networking` }, "topic"},
		{"too many tags", func(r *models.SearchRequest) {
			r.Tags = []string{"story", "ask_hn", "show_hn", "front_page", "poll", "story"}
		}, "tags"},
		{"unknown tag", func(r *models.SearchRequest) { r.Tags = []string{"jobs"} }, "tags"},
		{"bad time range", func(r *models.SearchRequest) { r.TimeRange = "decade" }, "timeRange"},
		{"bad sort", func(r *models.SearchRequest) { r.SortBy = "random" }, "sortBy"},
		{"negative upvotes", func(r *models.SearchRequest) { r.MinUpvotes = -1 }, "minUpvotes"},
		{"excessive upvotes", func(r *models.SearchRequest) { r.MinUpvotes = 10001 }, "minUpvotes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			err := validateRequest(req)
			require.Error(t, err)

			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, ve.Issues, tc.field)
		})
	}

	t.Run("multi-byte topic counted in runes", func(t *testing.T) {
		req := validRequest()
		req.Topic = strings.Repeat("ü", 100)
		require.NoError(t, validateRequest(req))
	})

	t.Run("backtick is allowed", func(t *testing.T) {
		req := validRequest()
		req.Topic = "docker `compose` quirks"
		require.NoError(t, validateRequest(req))
	})
}

func TestSubmit_NewSearchEnqueued(t *testing.T) {
	svc, client, _ := newTestSearchService(t)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Nil(t, resp.Result)

	row, err := client.Search.Get(ctx, resp.SearchID)
	require.NoError(t, err)
	assert.Equal(t, "docker networking", row.Topic)
	assert.Equal(t, search.StatusPending, row.Status)
	assert.Equal(t, []string{"ask_hn"}, row.Tags)
}

func TestSubmit_DeduplicatesInFlight(t *testing.T) {
	svc, _, _ := newTestSearchService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	// Equivalent request, different casing and tag order.
	req := validRequest()
	req.Topic = "  Docker NETWORKING "
	second, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.SearchID, second.SearchID)
	assert.Equal(t, models.StatusPending, second.Status)
}

func TestSubmit_DistinctFingerprintsGetDistinctSearches(t *testing.T) {
	svc, _, _ := newTestSearchService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.TimeRange = models.TimeRangeWeek
	second, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.SearchID, second.SearchID)
}

func TestSubmit_ValidationRejected(t *testing.T) {
	svc, _, _ := newTestSearchService(t)

	req := validRequest()
	req.Topic = "x"
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSubmit_DefaultsApplied(t *testing.T) {
	svc, client, _ := newTestSearchService(t)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, models.SearchRequest{Topic: "docker networking"})
	require.NoError(t, err)

	row, err := client.Search.Get(ctx, resp.SearchID)
	require.NoError(t, err)
	assert.Equal(t, search.TimeRangeMonth, row.TimeRange)
	assert.Equal(t, search.SortByRelevance, row.SortBy)
}

func TestSubmit_StaleMappingReplaced(t *testing.T) {
	svc, client, _ := newTestSearchService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	// Simulate retention purging the row while the mapping lives on.
	require.NoError(t, client.Search.DeleteOneID(first.SearchID).Exec(ctx))

	second, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.SearchID, second.SearchID)

	row, err := client.Search.Get(ctx, second.SearchID)
	require.NoError(t, err)
	assert.Equal(t, search.StatusPending, row.Status)
}

func TestGetStatus(t *testing.T) {
	svc, client, _ := newTestSearchService(t)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetStatus(ctx, uuid.New().String())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("processing search reports live status", func(t *testing.T) {
		resp, err := svc.Submit(ctx, validRequest())
		require.NoError(t, err)

		require.NoError(t, client.Search.UpdateOneID(resp.SearchID).
			SetStatus(search.StatusProcessing).Exec(ctx))

		status, err := svc.GetStatus(ctx, resp.SearchID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusProcessing, status.Status)
		assert.Nil(t, status.Result)
	})

	t.Run("failed search carries its message", func(t *testing.T) {
		req := validRequest()
		req.Topic = "kubernetes operators"
		resp, err := svc.Submit(ctx, req)
		require.NoError(t, err)

		require.NoError(t, client.Search.UpdateOneID(resp.SearchID).
			SetStatus(search.StatusFailed).
			SetErrorMessage("Something went wrong.").Exec(ctx))

		status, err := svc.GetStatus(ctx, resp.SearchID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, status.Status)
		assert.Equal(t, "Something went wrong.", status.ErrorMessage)
	})
}

func TestGetStatus_CompletedAssemblesAndCaches(t *testing.T) {
	svc, client, c := newTestSearchService(t)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	searchID := resp.SearchID

	// Persist a minimal completed result set.
	require.NoError(t, client.PainPoint.Create().
		SetID(uuid.New().String()).
		SetSearchID(searchID).
		SetTitle("Bridge networking is confusing").
		SetSourceTag("ask_hn").
		SetMentionsCount(4).
		Exec(ctx))
	require.NoError(t, client.SearchSummary.Create().
		SetSearchID(searchID).
		SetTotalPosts(12).
		SetTotalComments(80).
		SetTotalMentions(4).
		SetSourceTags([]string{"ask_hn"}).
		Exec(ctx))
	require.NoError(t, client.Search.UpdateOneID(searchID).
		SetStatus(search.StatusCompleted).
		SetCompletedAt(time.Now()).Exec(ctx))

	status, err := svc.GetStatus(ctx, searchID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, status.Status)
	require.NotNil(t, status.Result)
	assert.Equal(t, 12, status.Result.TotalPostsConsidered)
	require.Len(t, status.Result.PainPoints, 1)

	// The store read warmed the cache for the next lookup.
	cached, err := c.GetResult(ctx, cache.ResultByIDKey(searchID))
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, searchID, cached.SearchID)

	// Resubmitting the same request now hits the fingerprint cache.
	resubmit, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, resubmit.Status)
	require.NotNil(t, resubmit.Result)
	assert.Equal(t, searchID, resubmit.SearchID)
}
