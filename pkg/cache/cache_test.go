package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/pkg/models"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, 30*time.Minute), mr
}

func sampleResult(searchID string) *models.SearchResult {
	return &models.SearchResult{
		SearchID:  searchID,
		Status:    models.StatusCompleted,
		Topic:     "docker networking",
		Tags:      []string{"ask_hn"},
		TimeRange: models.TimeRangeMonth,
		SortBy:    models.SortByRelevance,
		PainPoints: []models.PainPoint{
			{ID: "pp-1", SearchID: searchID, Title: "Bridge networking is confusing", SourceTag: "ask_hn", MentionsCount: 4},
		},
		Quotes: []models.Quote{},
	}
}

func TestCache_ResultRoundtrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	result := sampleResult("s-1")
	require.NoError(t, c.SetResult(ctx, "s-1", "searchKey:abc", result))

	t.Run("by id", func(t *testing.T) {
		got, err := c.GetResult(ctx, ResultByIDKey("s-1"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, result.SearchID, got.SearchID)
		assert.Equal(t, result.PainPoints, got.PainPoints)
	})

	t.Run("by fingerprint", func(t *testing.T) {
		got, err := c.GetResult(ctx, ResultByFingerprintKey("searchKey:abc"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "s-1", got.SearchID)
	})

	t.Run("mapping set alongside", func(t *testing.T) {
		id, err := c.GetMapping(ctx, "searchKey:abc")
		require.NoError(t, err)
		assert.Equal(t, "s-1", id)
	})
}

func TestCache_MissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetResult(context.Background(), ResultByIDKey("absent"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_CorruptedEntryDeletedAndMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	key := ResultByIDKey("s-2")
	require.NoError(t, mr.Set(key, "{not valid json"))

	got, err := c.GetResult(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The corrupted entry was removed.
	assert.False(t, mr.Exists(key))
}

func TestCache_SetMappingNX(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	claimed, err := c.SetMappingNX(ctx, "searchKey:fp", "winner")
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = c.SetMappingNX(ctx, "searchKey:fp", "loser")
	require.NoError(t, err)
	assert.False(t, claimed)

	id, err := c.GetMapping(ctx, "searchKey:fp")
	require.NoError(t, err)
	assert.Equal(t, "winner", id)

	require.NoError(t, c.DeleteMapping(ctx, "searchKey:fp"))
	id, err = c.GetMapping(ctx, "searchKey:fp")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetResult(ctx, "s-3", "searchKey:ttl", sampleResult("s-3")))
	mr.FastForward(31 * time.Minute)

	got, err := c.GetResult(ctx, ResultByIDKey("s-3"))
	require.NoError(t, err)
	assert.Nil(t, got)

	id, err := c.GetMapping(ctx, "searchKey:ttl")
	require.NoError(t, err)
	assert.Empty(t, id)
}
