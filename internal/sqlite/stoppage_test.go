package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestStoppage(id string, startedAt time.Time, durationSecs float64) *stoppage.Stoppage {
	return &stoppage.Stoppage{
		ID:           id,
		MachineID:    "m1",
		StartedAt:    startedAt,
		DurationSecs: durationSecs,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestStoppageRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertMachine(t, db, "m1", "tenant1")

	repo := NewStoppageRepository(db)
	st := newTestStoppage("st1", time.Now().UTC(), 600)
	require.NoError(t, repo.Create(ctx, "tenant1", st))

	loaded, err := repo.Get(ctx, "tenant1", "st1")
	require.NoError(t, err)
	require.Equal(t, "tenant1", loaded.TenantID)
	require.Equal(t, 600.0, loaded.DurationSecs)
	require.False(t, loaded.Classified)
	require.Empty(t, loaded.Reason)
	require.Nil(t, loaded.OrderID)
}

func TestStoppageRepository_Classify(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertMachine(t, db, "m1", "tenant1")

	repo := NewStoppageRepository(db)
	require.NoError(t, repo.Create(ctx, "tenant1", newTestStoppage("st1", time.Now().UTC(), 600)))

	require.NoError(t, repo.Classify(ctx, "tenant1", "st1", "tool change"))

	loaded, err := repo.Get(ctx, "tenant1", "st1")
	require.NoError(t, err)
	require.True(t, loaded.Classified)
	require.Equal(t, "tool change", loaded.Reason)

	err = repo.Classify(ctx, "tenant2", "st1", "tool change")
	require.Equal(t, repository.ErrNotFound, err)
}

// TestStoppageRepository_ListWindow verifies that the window query picks up
// every stoppage overlapping the window, however long before it started, and
// nothing that ended before the window began.
func TestStoppageRepository_ListWindow(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertMachine(t, db, "m1", "tenant1")

	repo := NewStoppageRepository(db)
	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)

	// Inside the window.
	require.NoError(t, repo.Create(ctx, "tenant1", newTestStoppage("st1", now.Add(-2*time.Hour), 600)))
	// Started an hour before the window, ends an hour inside it.
	require.NoError(t, repo.Create(ctx, "tenant1", newTestStoppage("st2", from.Add(-time.Hour), 7200)))
	// Ended long before the window began.
	require.NoError(t, repo.Create(ctx, "tenant1", newTestStoppage("st3", now.Add(-80*time.Hour), 600)))
	// A breakdown spanning days: started 36h before the window, 48h long, so
	// it still covers the first 12h of the window.
	require.NoError(t, repo.Create(ctx, "tenant1", newTestStoppage("st4", from.Add(-36*time.Hour), 48*3600)))

	stoppages, err := repo.ListWindow(ctx, "tenant1", "m1", from, now)
	require.NoError(t, err)
	require.Len(t, stoppages, 3)
	require.Equal(t, "st4", stoppages[0].ID)
	require.Equal(t, "st2", stoppages[1].ID)
	require.Equal(t, "st1", stoppages[2].ID)
}
