package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/test/util"
)

func TestRecoverStale(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := testQueueConfig()

	t.Run("resets silent processing search for retry", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing).
				SetPodID("pod-dead").
				SetLastRetryAt(time.Now().Add(-10 * time.Minute))
		})

		recovered, err := RecoverStale(ctx, client, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, recovered)

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusPending, got.Status)
		assert.Equal(t, 1, got.RetryCount)
		require.NotNil(t, got.NextRetryAt)
		assert.InDelta(t, time.Minute.Seconds(), time.Until(*got.NextRetryAt).Seconds(), 5)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, staleRetryMessage, *got.ErrorMessage)
	})

	t.Run("fails stale search with exhausted retries", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing).
				SetRetryCount(2).
				SetLastRetryAt(time.Now().Add(-10 * time.Minute))
		})

		_, err := RecoverStale(ctx, client, cfg, nil)
		require.NoError(t, err)

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusFailed, got.Status)
		assert.Equal(t, 3, got.RetryCount)
		assert.NotNil(t, got.CompletedAt)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, timeoutMessage, *got.ErrorMessage)
	})

	t.Run("leaves fresh processing searches alone", func(t *testing.T) {
		row := createSearch(t, client, func(c *ent.SearchCreate) {
			c.SetStatus(search.StatusProcessing).
				SetLastRetryAt(time.Now())
		})

		recovered, err := RecoverStale(ctx, client, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, recovered)

		got, err := client.Search.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, search.StatusProcessing, got.Status)
	})
}

func TestCleanupStartupStale(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := testQueueConfig()

	// Left over from a crashed run of this pod, heartbeat still recent.
	mine := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing).
			SetPodID("pod-a").
			SetLastRetryAt(time.Now())
	})
	// Another pod's active search must not be touched.
	other := createSearch(t, client, func(c *ent.SearchCreate) {
		c.SetStatus(search.StatusProcessing).
			SetPodID("pod-b").
			SetLastRetryAt(time.Now())
	})

	require.NoError(t, CleanupStartupStale(ctx, client, cfg, "pod-a"))

	got, err := client.Search.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, search.StatusPending, got.Status)
	assert.Equal(t, 1, got.RetryCount)

	got, err = client.Search.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, search.StatusProcessing, got.Status)
}
