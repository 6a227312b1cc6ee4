package inventory_test

import (
	"context"
	"testing"

	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/mfgpulse/oeetrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_CreateDerives(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.InventoryRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*inventory.Item")).Return(nil)

	svc := inventory.NewService(repo, nil)
	item, err := svc.Create(ctx, "tenant1", inventory.CreateRequest{
		Name:       "Steel coil",
		SKU:        "SC-1",
		CurrentQty: 5,
		MinQty:     10,
	})
	require.NoError(t, err)
	require.Equal(t, inventory.StatusActive, item.Status)
	require.True(t, item.NeedsAttention)
	require.Equal(t, inventory.ReasonLowStock, item.AttentionReason)
	require.NotEmpty(t, item.ID)

	repo.AssertExpectations(t)
}

func TestInventoryService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(&mocks.InventoryRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", inventory.CreateRequest{SKU: "SC-1"})
	require.ErrorIs(t, err, inventory.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", inventory.CreateRequest{Name: "Steel coil"})
	require.ErrorIs(t, err, inventory.ErrInvalidInput)
}

func TestInventoryService_PatchMergesAndRederives(t *testing.T) {
	ctx := context.Background()

	stored := &inventory.Item{
		ID:         "i1",
		TenantID:   "tenant1",
		Name:       "Steel coil",
		SKU:        "SC-1",
		CurrentQty: 50,
		MinQty:     10,
		Status:     inventory.StatusActive,
	}

	repo := &mocks.InventoryRepository{}
	repo.On("Get", ctx, "tenant1", "i1").Return(stored, nil)
	repo.On("Update", ctx, "tenant1", mock.AnythingOfType("*inventory.Item")).Return(nil)

	svc := inventory.NewService(repo, nil)

	// Only the quantity changes; the stored minimum still applies.
	qty := -2.0
	item, err := svc.Patch(ctx, "tenant1", "i1", inventory.PatchRequest{CurrentQty: &qty})
	require.NoError(t, err)
	require.Equal(t, inventory.StatusDepleted, item.Status)
	require.True(t, item.NeedsAttention)
	require.Equal(t, inventory.ReasonLowStock, item.AttentionReason)
	require.Equal(t, "Steel coil", item.Name)

	repo.AssertExpectations(t)
}

func TestInventoryService_PatchInactiveFlag(t *testing.T) {
	ctx := context.Background()

	stored := &inventory.Item{
		ID:         "i1",
		TenantID:   "tenant1",
		Name:       "Steel coil",
		SKU:        "SC-1",
		CurrentQty: 50,
		MinQty:     10,
		Status:     inventory.StatusActive,
	}

	repo := &mocks.InventoryRepository{}
	repo.On("Get", ctx, "tenant1", "i1").Return(stored, nil)
	repo.On("Update", ctx, "tenant1", mock.AnythingOfType("*inventory.Item")).Return(nil)

	svc := inventory.NewService(repo, nil)

	inactive := true
	item, err := svc.Patch(ctx, "tenant1", "i1", inventory.PatchRequest{Inactive: &inactive})
	require.NoError(t, err)
	require.Equal(t, inventory.StatusInactive, item.Status)
	require.False(t, item.NeedsAttention)
}

func TestInventoryService_PatchNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.InventoryRepository{}
	repo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := inventory.NewService(repo, nil)
	_, err := svc.Patch(ctx, "tenant1", "missing", inventory.PatchRequest{})
	require.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventoryService_PatchRejectsBlankName(t *testing.T) {
	ctx := context.Background()

	stored := &inventory.Item{ID: "i1", Name: "Steel coil", SKU: "SC-1", Status: inventory.StatusActive}
	repo := &mocks.InventoryRepository{}
	repo.On("Get", ctx, "tenant1", "i1").Return(stored, nil)

	svc := inventory.NewService(repo, nil)
	blank := "  "
	_, err := svc.Patch(ctx, "tenant1", "i1", inventory.PatchRequest{Name: &blank})
	require.ErrorIs(t, err, inventory.ErrInvalidInput)
}
