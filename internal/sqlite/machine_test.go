package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestMachine(id, name string) *machine.Machine {
	now := time.Now().UTC()
	return &machine.Machine{
		ID:        id,
		Name:      name,
		Code:      "M-" + id,
		Location:  "Hall A",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMachineRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMachineRepository(db)

	err := repo.Create(ctx, "tenant1", newTestMachine("m1", "Press 1"))
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, "tenant1", "m1")
	require.NoError(t, err)
	require.Equal(t, "tenant1", loaded.TenantID)
	require.Equal(t, "Press 1", loaded.Name)
	require.Equal(t, "Hall A", loaded.Location)
	require.True(t, loaded.Active)
}

func TestMachineRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMachineRepository(db)

	require.NoError(t, repo.Create(ctx, "tenant1", newTestMachine("m1", "Press 1")))

	_, err := repo.Get(ctx, "tenant2", "m1")
	require.Equal(t, repository.ErrNotFound, err)

	err = repo.Delete(ctx, "tenant2", "m1")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestMachineRepository_UpdateDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMachineRepository(db)

	m := newTestMachine("m1", "Press 1")
	require.NoError(t, repo.Create(ctx, "tenant1", m))

	m.Name = "Press 1 (rebuilt)"
	m.Active = false
	require.NoError(t, repo.Update(ctx, "tenant1", m))

	loaded, err := repo.Get(ctx, "tenant1", "m1")
	require.NoError(t, err)
	require.Equal(t, "Press 1 (rebuilt)", loaded.Name)
	require.False(t, loaded.Active)

	require.NoError(t, repo.Delete(ctx, "tenant1", "m1"))
	_, err = repo.Get(ctx, "tenant1", "m1")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestMachineRepository_ListActiveOnly(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMachineRepository(db)

	require.NoError(t, repo.Create(ctx, "tenant1", newTestMachine("m1", "Press 1")))
	idle := newTestMachine("m2", "Press 2")
	idle.Active = false
	require.NoError(t, repo.Create(ctx, "tenant1", idle))

	all, err := repo.List(ctx, "tenant1", false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := repo.List(ctx, "tenant1", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "m1", active[0].ID)
}
