package shift_test

import (
	"context"
	"testing"

	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShiftService_CreateDerivesDuration(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ShiftRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*shift.Shift")).Return(nil)

	svc := shift.NewService(repo, nil)
	sh, err := svc.Create(ctx, "tenant1", shift.CreateRequest{
		Name:      "Morning",
		StartTime: "06:00",
		EndTime:   "14:00",
	})
	require.NoError(t, err)
	require.NotNil(t, sh.DurationHours)
	require.Equal(t, 8.0, *sh.DurationHours)

	repo.AssertExpectations(t)
}

func TestShiftService_CreateMalformedTimesLeaveDurationUnset(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ShiftRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*shift.Shift")).Return(nil)

	svc := shift.NewService(repo, nil)
	sh, err := svc.Create(ctx, "tenant1", shift.CreateRequest{
		Name:      "Odd",
		StartTime: "6am",
		EndTime:   "14:00",
	})
	require.NoError(t, err, "malformed times should not block the save")
	require.Nil(t, sh.DurationHours)
}

func TestShiftService_PatchRecomputesFromMergedTimes(t *testing.T) {
	ctx := context.Background()

	hours := 8.0
	stored := &shift.Shift{
		ID:            "s1",
		TenantID:      "tenant1",
		Name:          "Morning",
		StartTime:     "06:00",
		EndTime:       "14:00",
		DurationHours: &hours,
	}

	repo := &mocks.ShiftRepository{}
	repo.On("Get", ctx, "tenant1", "s1").Return(stored, nil)
	repo.On("Update", ctx, "tenant1", mock.AnythingOfType("*shift.Shift")).Return(nil)

	svc := shift.NewService(repo, nil)

	// Only the end time changes; the stored start time still applies.
	end := "15:30"
	sh, err := svc.Patch(ctx, "tenant1", "s1", shift.PatchRequest{EndTime: &end})
	require.NoError(t, err)
	require.Equal(t, "06:00", sh.StartTime)
	require.NotNil(t, sh.DurationHours)
	require.Equal(t, 9.5, *sh.DurationHours)

	repo.AssertExpectations(t)
}

func TestShiftService_PatchNameOnlyKeepsDuration(t *testing.T) {
	ctx := context.Background()

	hours := 8.0
	stored := &shift.Shift{
		ID:            "s1",
		TenantID:      "tenant1",
		Name:          "Morning",
		StartTime:     "06:00",
		EndTime:       "14:00",
		DurationHours: &hours,
	}

	repo := &mocks.ShiftRepository{}
	repo.On("Get", ctx, "tenant1", "s1").Return(stored, nil)
	repo.On("Update", ctx, "tenant1", mock.AnythingOfType("*shift.Shift")).Return(nil)

	svc := shift.NewService(repo, nil)

	name := "Early"
	sh, err := svc.Patch(ctx, "tenant1", "s1", shift.PatchRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Early", sh.Name)
	require.NotNil(t, sh.DurationHours)
	require.Equal(t, 8.0, *sh.DurationHours)
}

func TestShiftService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := shift.NewService(&mocks.ShiftRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", shift.CreateRequest{StartTime: "06:00", EndTime: "14:00"})
	require.ErrorIs(t, err, shift.ErrInvalidInput)
}
