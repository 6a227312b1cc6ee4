package stoppage_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/mfgpulse/oeetrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoppageService_Log(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StoppageRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*stoppage.Stoppage")).Return(nil)

	svc := stoppage.NewService(repo, nil)
	st, err := svc.Log(ctx, "tenant1", stoppage.LogRequest{
		MachineID:    "m1",
		StartedAt:    time.Now(),
		DurationSecs: 600,
		Reason:       "tool change",
	})
	require.NoError(t, err)
	require.Equal(t, 600.0, st.DurationSecs)
	require.True(t, st.Classified)

	repo.AssertExpectations(t)
}

func TestStoppageService_LogWithoutReasonUnclassified(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StoppageRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*stoppage.Stoppage")).Return(nil)

	svc := stoppage.NewService(repo, nil)
	st, err := svc.Log(ctx, "tenant1", stoppage.LogRequest{
		MachineID:    "m1",
		DurationSecs: 600,
	})
	require.NoError(t, err)
	require.False(t, st.Classified)
	require.False(t, st.StartedAt.IsZero())
}

func TestStoppageService_LogClampsInvalidDuration(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StoppageRepository{}
	repo.On("Create", ctx, "tenant1", mock.AnythingOfType("*stoppage.Stoppage")).Return(nil)

	svc := stoppage.NewService(repo, nil)
	for _, bad := range []float64{-5, math.NaN(), math.Inf(1)} {
		st, err := svc.Log(ctx, "tenant1", stoppage.LogRequest{
			MachineID:    "m1",
			DurationSecs: bad,
		})
		require.NoError(t, err, "invalid duration should not block the log")
		require.Equal(t, 0.0, st.DurationSecs)
	}
}

func TestStoppageService_Classify(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StoppageRepository{}
	repo.On("Classify", ctx, "tenant1", "st1", "jam").Return(nil)
	repo.On("Get", ctx, "tenant1", "st1").Return(&stoppage.Stoppage{
		ID:         "st1",
		Reason:     "jam",
		Classified: true,
	}, nil)

	svc := stoppage.NewService(repo, nil)
	st, err := svc.Classify(ctx, "tenant1", "st1", "jam")
	require.NoError(t, err)
	require.True(t, st.Classified)
	require.Equal(t, "jam", st.Reason)

	repo.AssertExpectations(t)
}

func TestStoppageService_ClassifyValidation(t *testing.T) {
	ctx := context.Background()
	svc := stoppage.NewService(&mocks.StoppageRepository{}, nil)

	_, err := svc.Classify(ctx, "tenant1", "st1", "  ")
	require.ErrorIs(t, err, stoppage.ErrInvalidInput)
}

func TestStoppageService_ClassifyNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StoppageRepository{}
	repo.On("Classify", ctx, "tenant1", "missing", "jam").Return(repository.ErrNotFound)

	svc := stoppage.NewService(repo, nil)
	_, err := svc.Classify(ctx, "tenant1", "missing", "jam")
	require.ErrorIs(t, err, stoppage.ErrStoppageNotFound)
}
