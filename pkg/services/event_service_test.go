package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/ent"
	"github.com/painscope/painscope/ent/joblog"
	"github.com/painscope/painscope/ent/searchevent"
	"github.com/painscope/painscope/test/util"
)

func createEventSearch(t *testing.T, client *ent.Client) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, client.Search.Create().
		SetID(id).
		SetTopic("docker networking").
		Exec(context.Background()))
	return id
}

func createEvent(t *testing.T, client *ent.Client, searchID string, seq int, createdAt time.Time) *ent.SearchEvent {
	t.Helper()
	row, err := client.SearchEvent.Create().
		SetEventID(uuid.New().String()).
		SetSearchID(searchID).
		SetPhase(searchevent.PhaseStories).
		SetEventType(searchevent.EventTypeStoryDiscovered).
		SetPayload(map[string]interface{}{"seq": seq}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestGetEventsSince(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	searchID := createEventSearch(t, client)
	var ids []int
	for i := 0; i < 5; i++ {
		row := createEvent(t, client, searchID, i, time.Now())
		ids = append(ids, row.ID)
	}

	t.Run("replays everything from zero in id order", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "search:"+searchID, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i, ev := range events {
			assert.Equal(t, ids[i], ev.ID)
			assert.Equal(t, float64(i), ev.Payload["seq"])
		}
	})

	t.Run("resumes after the given row id", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "search:"+searchID, ids[2], 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[3], events[0].ID)
		assert.Equal(t, ids[4], events[1].ID)
	})

	t.Run("honors the limit", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "search:"+searchID, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[0], events[0].ID)
	})

	t.Run("other searches stay isolated", func(t *testing.T) {
		other := createEventSearch(t, client)
		createEvent(t, client, other, 99, time.Now())

		events, err := svc.GetEventsSince(ctx, "search:"+other, 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("non-search channel has no history", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "searches", 0, 100)
		require.NoError(t, err)
		assert.Nil(t, events)
	})
}

func TestCleanupSearchEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	target := createEventSearch(t, client)
	keep := createEventSearch(t, client)
	for i := 0; i < 3; i++ {
		createEvent(t, client, target, i, time.Now())
	}
	createEvent(t, client, keep, 0, time.Now())

	count, err := svc.CleanupSearchEvents(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	remaining, err := client.SearchEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestCleanupOldEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	searchID := createEventSearch(t, client)
	createEvent(t, client, searchID, 0, time.Now().Add(-48*time.Hour))
	fresh := createEvent(t, client, searchID, 1, time.Now())

	count, err := svc.CleanupOldEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, err := client.SearchEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fresh.ID, rows[0].ID)
}

func TestJobLogCleanup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	logs := NewJobLogService(client)
	ctx := context.Background()

	logs.Info(ctx, "", "startup", nil)
	logs.Error(ctx, "", "old failure", map[string]interface{}{"attempt": 1})

	// Age the failure row past the window.
	old, err := client.JobLog.Query().
		Where(joblog.MessageEQ("old failure")).
		Only(ctx)
	require.NoError(t, err)
	_, err = client.JobLog.UpdateOneID(old.ID).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	count, err := logs.CleanupOldLogs(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := client.JobLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "startup", remaining.Message)
}
