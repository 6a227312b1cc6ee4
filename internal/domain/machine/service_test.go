package machine_test

import (
	"context"
	"testing"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/mfgpulse/oeetrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMachineService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MachineRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*machine.Machine")).Return(nil)

	svc := machine.NewService(repo, nil)
	m, err := svc.Create(ctx, "tenant1", machine.CreateRequest{Name: "Press 1", Code: "PR-1"})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.True(t, m.Active, "new machines start active")

	repo.AssertExpectations(t)
}

func TestMachineService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := machine.NewService(&mocks.MachineRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", machine.CreateRequest{Code: "PR-1"})
	require.ErrorIs(t, err, machine.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", machine.CreateRequest{Name: "Press 1"})
	require.ErrorIs(t, err, machine.ErrInvalidInput)
}

func TestMachineService_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()

	stored := &machine.Machine{ID: "m1", Name: "Press 1", Code: "PR-1", Active: true}
	repo := &mocks.MachineRepository{}
	repo.On("Get", ctx, "tenant1", "m1").Return(stored, nil)
	repo.On("Update", ctx, "tenant1", mock.AnythingOfType("*machine.Machine")).Return(nil)

	svc := machine.NewService(repo, nil)

	active := false
	m, err := svc.Update(ctx, "tenant1", "m1", machine.UpdateRequest{Active: &active})
	require.NoError(t, err)
	require.False(t, m.Active)
	require.Equal(t, "Press 1", m.Name, "untouched fields survive updates")

	repo.AssertExpectations(t)
}

func TestMachineService_UpdateRejectsBlankName(t *testing.T) {
	ctx := context.Background()

	stored := &machine.Machine{ID: "m1", Name: "Press 1", Code: "PR-1"}
	repo := &mocks.MachineRepository{}
	repo.On("Get", ctx, "tenant1", "m1").Return(stored, nil)

	svc := machine.NewService(repo, nil)
	blank := ""
	_, err := svc.Update(ctx, "tenant1", "m1", machine.UpdateRequest{Name: &blank})
	require.ErrorIs(t, err, machine.ErrInvalidInput)
}

func TestMachineService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MachineRepository{}
	repo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := machine.NewService(repo, nil)
	_, err := svc.Get(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, machine.ErrMachineNotFound)
}
