package oee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/oee"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/mfgpulse/oeetrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oeeMocks struct {
	machines  *mocks.MachineRepository
	orders    *mocks.OrderRepository
	cycles    *mocks.CycleRepository
	stoppages *mocks.StoppageRepository
	scrap     *mocks.ScrapRepository
	links     *mocks.ProductRepository
}

func newOEEMocks() oeeMocks {
	return oeeMocks{
		machines:  &mocks.MachineRepository{},
		orders:    &mocks.OrderRepository{},
		cycles:    &mocks.CycleRepository{},
		stoppages: &mocks.StoppageRepository{},
		scrap:     &mocks.ScrapRepository{},
		links:     &mocks.ProductRepository{},
	}
}

func (m oeeMocks) service() *oee.Service {
	return oee.NewService(m.machines, m.orders, m.cycles, m.stoppages, m.scrap, m.links, nil)
}

func TestOEEService_MachineReport(t *testing.T) {
	ctx := context.Background()
	m := newOEEMocks()

	m.machines.On("Get", ctx, "tenant1", "m1").Return(&machine.Machine{ID: "m1", Name: "Press 1"}, nil)
	m.cycles.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return([]order.Cycle{
		{Defective: false, RecordedAt: time.Now().Add(-time.Hour)},
		{Defective: false, RecordedAt: time.Now().Add(-time.Hour)},
		{Defective: true, RecordedAt: time.Now().Add(-time.Hour)},
	}, nil)
	m.stoppages.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return([]stoppage.Stoppage{
		{StartedAt: time.Now().Add(-2 * time.Hour), DurationSecs: 1800, Classified: false},
	}, nil)
	m.scrap.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return([]scrap.Entry{
		{Quantity: 2.5}, {Quantity: 1},
	}, nil)
	m.orders.On("LatestForMachine", ctx, "tenant1", "m1").Return(&order.Order{
		ID: "o1", ProductID: "p1", MachineID: "m1",
	}, nil)
	m.links.On("GetLink", ctx, "tenant1", "p1", "m1").Return(&product.MachineLink{
		ID: "l1", IdealCycleTimeSecs: 12,
	}, nil)

	report, err := m.service().MachineReport(ctx, "tenant1", "m1", 1, 24)
	require.NoError(t, err)
	require.Equal(t, "m1", report.MachineID)
	require.Equal(t, "Press 1", report.MachineName)
	require.Equal(t, 3, report.CycleCount)
	require.Equal(t, 1, report.DefectiveCount)
	require.Equal(t, 1800.0, report.StoppageSecs)
	require.Equal(t, 1, report.UnclassifiedStoppages)
	require.Equal(t, 3.5, report.ScrapQty)
	require.InDelta(t, 66.67, report.Quality, 0.001)
	require.GreaterOrEqual(t, report.Availability, 0.0)
	require.LessOrEqual(t, report.OEE, 100.0)
}

func TestOEEService_MachineReportNotFound(t *testing.T) {
	ctx := context.Background()
	m := newOEEMocks()

	m.machines.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	_, err := m.service().MachineReport(ctx, "tenant1", "missing", 1, 24)
	require.ErrorIs(t, err, machine.ErrMachineNotFound)
}

func TestOEEService_IdealCycleFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	m := newOEEMocks()

	m.machines.On("Get", ctx, "tenant1", "m1").Return(&machine.Machine{ID: "m1", Name: "Press 1"}, nil)
	m.cycles.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	m.stoppages.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	m.scrap.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	// No order has ever run on the machine.
	m.orders.On("LatestForMachine", ctx, "tenant1", "m1").Return(nil, repository.ErrNotFound)

	report, err := m.service().MachineReport(ctx, "tenant1", "m1", 1, 24)
	require.NoError(t, err)
	require.Equal(t, 0.0, report.Quality, "no cycles means zero quality")
	require.Equal(t, 100.0, report.Availability)
}

func TestOEEService_DashboardSkipsFailingMachine(t *testing.T) {
	ctx := context.Background()
	m := newOEEMocks()

	m.machines.On("List", ctx, "tenant1", true).Return([]machine.Machine{
		{ID: "m1", Name: "Press 1"},
		{ID: "m2", Name: "Press 2"},
	}, nil)

	m.machines.On("Get", ctx, "tenant1", "m1").Return(&machine.Machine{ID: "m1", Name: "Press 1"}, nil)
	m.cycles.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	m.stoppages.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	m.scrap.On("ListWindow", ctx, "tenant1", "m1", mock.Anything, mock.Anything).Return(nil, nil)
	m.orders.On("LatestForMachine", ctx, "tenant1", "m1").Return(nil, repository.ErrNotFound)

	m.machines.On("Get", ctx, "tenant1", "m2").Return(&machine.Machine{ID: "m2", Name: "Press 2"}, nil)
	m.cycles.On("ListWindow", ctx, "tenant1", "m2", mock.Anything, mock.Anything).
		Return(nil, errors.New("database is locked"))

	reports, err := m.service().Dashboard(ctx, "tenant1", 1, 24)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "m1", reports[0].MachineID)
}
