package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestItem(id, name string) *inventory.Item {
	now := time.Now().UTC()
	return &inventory.Item{
		ID:         id,
		Name:       name,
		SKU:        "SKU-" + id,
		CurrentQty: 50,
		MinQty:     10,
		Status:     inventory.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestInventoryRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(db)

	item := newTestItem("i1", "Steel coil")
	maxQty := 200.0
	expiry := time.Now().UTC().AddDate(0, 6, 0)
	item.MaxQty = &maxQty
	item.ExpiryDate = &expiry

	require.NoError(t, repo.Create(ctx, "tenant1", item))

	loaded, err := repo.Get(ctx, "tenant1", "i1")
	require.NoError(t, err)
	require.Equal(t, "tenant1", loaded.TenantID)
	require.Equal(t, inventory.StatusActive, loaded.Status)
	require.NotNil(t, loaded.MaxQty)
	require.Equal(t, 200.0, *loaded.MaxQty)
	require.NotNil(t, loaded.ExpiryDate)
	require.False(t, loaded.NeedsAttention)
}

func TestInventoryRepository_NullableFields(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(db)

	require.NoError(t, repo.Create(ctx, "tenant1", newTestItem("i1", "Steel coil")))

	loaded, err := repo.Get(ctx, "tenant1", "i1")
	require.NoError(t, err)
	require.Nil(t, loaded.MaxQty)
	require.Nil(t, loaded.ExpiryDate)
	require.Empty(t, loaded.AttentionReason)
}

func TestInventoryRepository_UpdateDerivedFields(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(db)

	item := newTestItem("i1", "Steel coil")
	require.NoError(t, repo.Create(ctx, "tenant1", item))

	item.CurrentQty = -3
	item.Status = inventory.StatusDepleted
	item.NeedsAttention = true
	item.AttentionReason = inventory.ReasonLowStock
	require.NoError(t, repo.Update(ctx, "tenant1", item))

	loaded, err := repo.Get(ctx, "tenant1", "i1")
	require.NoError(t, err)
	require.Equal(t, inventory.StatusDepleted, loaded.Status)
	require.True(t, loaded.NeedsAttention)
	require.Equal(t, inventory.ReasonLowStock, loaded.AttentionReason)
}

func TestInventoryRepository_ListAttentionOnly(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(db)

	require.NoError(t, repo.Create(ctx, "tenant1", newTestItem("i1", "Steel coil")))

	low := newTestItem("i2", "Aluminum sheet")
	low.CurrentQty = 5
	low.NeedsAttention = true
	low.AttentionReason = inventory.ReasonLowStock
	require.NoError(t, repo.Create(ctx, "tenant1", low))

	all, err := repo.List(ctx, "tenant1", false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	attention, err := repo.List(ctx, "tenant1", true)
	require.NoError(t, err)
	require.Len(t, attention, 1)
	require.Equal(t, "i2", attention[0].ID)
}

func TestInventoryRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(db)

	require.NoError(t, repo.Create(ctx, "tenant1", newTestItem("i1", "Steel coil")))

	_, err := repo.Get(ctx, "tenant2", "i1")
	require.Equal(t, repository.ErrNotFound, err)
}
