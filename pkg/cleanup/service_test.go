package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/search"
	"github.com/painscope/painscope/pkg/config"
	"github.com/painscope/painscope/pkg/services"
	"github.com/painscope/painscope/test/util"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cfg := &config.RetentionConfig{
		SearchRetentionDays: 30,
		JobLogTTL:           7 * 24 * time.Hour,
		CleanupInterval:     time.Hour,
	}
	svc := NewService(cfg, client, services.NewEventService(client), services.NewJobLogService(client))
	return svc, client
}

func createAgedSearch(t *testing.T, client *ent.Client, status search.Status, age time.Duration) *ent.Search {
	t.Helper()
	row, err := client.Search.Create().
		SetID(uuid.New().String()).
		SetTopic("docker networking").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestPurgeOldSearches(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	oldCompleted := createAgedSearch(t, client, search.StatusCompleted, 40*24*time.Hour)
	oldFailed := createAgedSearch(t, client, search.StatusFailed, 40*24*time.Hour)
	recentCompleted := createAgedSearch(t, client, search.StatusCompleted, 24*time.Hour)
	oldPending := createAgedSearch(t, client, search.StatusPending, 40*24*time.Hour)
	oldProcessing := createAgedSearch(t, client, search.StatusProcessing, 40*24*time.Hour)

	count, err := svc.PurgeOldSearches(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, id := range []string{oldCompleted.ID, oldFailed.ID} {
		_, err := client.Search.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err))
	}
	for _, id := range []string{recentCompleted.ID, oldPending.ID, oldProcessing.ID} {
		_, err := client.Search.Get(ctx, id)
		assert.NoError(t, err)
	}
}

func TestPurgeCascadesDependents(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	row := createAgedSearch(t, client, search.StatusCompleted, 40*24*time.Hour)
	require.NoError(t, client.PainPoint.Create().
		SetID(uuid.New().String()).
		SetSearchID(row.ID).
		SetTitle("Bridge networking is confusing").
		SetSourceTag("ask_hn").
		SetMentionsCount(2).
		Exec(ctx))
	require.NoError(t, client.SearchSummary.Create().
		SetSearchID(row.ID).
		SetTotalPosts(5).
		SetTotalComments(20).
		SetTotalMentions(2).
		SetSourceTags([]string{"ask_hn"}).
		Exec(ctx))

	count, err := svc.PurgeOldSearches(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	pains, err := client.PainPoint.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pains)

	summaries, err := client.SearchSummary.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summaries)
}

func TestStartStop(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgedSearch(t, client, search.StatusCompleted, 40*24*time.Hour)

	svc.Start(ctx)
	defer svc.Stop()

	// The loop runs once immediately on start.
	require.Eventually(t, func() bool {
		n, err := client.Search.Query().Count(ctx)
		return err == nil && n == 0
	}, 5*time.Second, 50*time.Millisecond)
}
