package mocks

import (
	"context"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/stretchr/testify/mock"
)

// CounterRepository is a mock for sequence.CounterRepository.
type CounterRepository struct {
	mock.Mock
}

func (m *CounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// MachineRepository is a mock for machine.Repository.
type MachineRepository struct {
	mock.Mock
}

func (m *MachineRepository) Create(ctx context.Context, tenantID string, mc *machine.Machine) error {
	args := m.Called(ctx, tenantID, mc)
	return args.Error(0)
}

func (m *MachineRepository) Get(ctx context.Context, tenantID, id string) (*machine.Machine, error) {
	args := m.Called(ctx, tenantID, id)
	if mc, ok := args.Get(0).(*machine.Machine); ok {
		return mc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MachineRepository) Update(ctx context.Context, tenantID string, mc *machine.Machine) error {
	args := m.Called(ctx, tenantID, mc)
	return args.Error(0)
}

func (m *MachineRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MachineRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]machine.Machine, error) {
	args := m.Called(ctx, tenantID, activeOnly)
	if list, ok := args.Get(0).([]machine.Machine); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProductRepository is a mock for product.Repository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, tenantID string, p *product.Product) error {
	args := m.Called(ctx, tenantID, p)
	return args.Error(0)
}

func (m *ProductRepository) Get(ctx context.Context, tenantID, id string) (*product.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if p, ok := args.Get(0).(*product.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, tenantID string, p *product.Product) error {
	args := m.Called(ctx, tenantID, p)
	return args.Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *ProductRepository) List(ctx context.Context, tenantID string) ([]product.Product, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]product.Product); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) CreateLink(ctx context.Context, tenantID string, link *product.MachineLink) error {
	args := m.Called(ctx, tenantID, link)
	return args.Error(0)
}

func (m *ProductRepository) GetLink(ctx context.Context, tenantID, productID, machineID string) (*product.MachineLink, error) {
	args := m.Called(ctx, tenantID, productID, machineID)
	if link, ok := args.Get(0).(*product.MachineLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) ListLinks(ctx context.Context, tenantID, productID string) ([]product.MachineLink, error) {
	args := m.Called(ctx, tenantID, productID)
	if list, ok := args.Get(0).([]product.MachineLink); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// OrderRepository is a mock for order.Repository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, tenantID string, ord *order.Order) error {
	args := m.Called(ctx, tenantID, ord)
	return args.Error(0)
}

func (m *OrderRepository) Get(ctx context.Context, tenantID, id string) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if ord, ok := args.Get(0).(*order.Order); ok {
		return ord, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, tenantID string, opts order.ListOptions) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]order.Order); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, tenantID, id string, status order.Status, finishedAt *time.Time) error {
	args := m.Called(ctx, tenantID, id, status, finishedAt)
	return args.Error(0)
}

func (m *OrderRepository) AddProduced(ctx context.Context, tenantID, id string, delta int64) (int64, error) {
	args := m.Called(ctx, tenantID, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) LatestForMachine(ctx context.Context, tenantID, machineID string) (*order.Order, error) {
	args := m.Called(ctx, tenantID, machineID)
	if ord, ok := args.Get(0).(*order.Order); ok {
		return ord, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) CountByNumberPrefix(ctx context.Context, tenantID, prefix string) (int64, error) {
	args := m.Called(ctx, tenantID, prefix)
	return args.Get(0).(int64), args.Error(1)
}

// CycleRepository is a mock for order.CycleRepository.
type CycleRepository struct {
	mock.Mock
}

func (m *CycleRepository) Create(ctx context.Context, tenantID string, c *order.Cycle) error {
	args := m.Called(ctx, tenantID, c)
	return args.Error(0)
}

func (m *CycleRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]order.Cycle, error) {
	args := m.Called(ctx, tenantID, machineID, from, to)
	if list, ok := args.Get(0).([]order.Cycle); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NumberSource is a mock for order.NumberSource.
type NumberSource struct {
	mock.Mock
}

func (m *NumberSource) Number(ctx context.Context, tenantID string) string {
	args := m.Called(ctx, tenantID)
	return args.String(0)
}

// StoppageRepository is a mock for stoppage.Repository.
type StoppageRepository struct {
	mock.Mock
}

func (m *StoppageRepository) Create(ctx context.Context, tenantID string, st *stoppage.Stoppage) error {
	args := m.Called(ctx, tenantID, st)
	return args.Error(0)
}

func (m *StoppageRepository) Get(ctx context.Context, tenantID, id string) (*stoppage.Stoppage, error) {
	args := m.Called(ctx, tenantID, id)
	if st, ok := args.Get(0).(*stoppage.Stoppage); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoppageRepository) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]stoppage.Stoppage, error) {
	args := m.Called(ctx, tenantID, machineID, limit, offset)
	if list, ok := args.Get(0).([]stoppage.Stoppage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoppageRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]stoppage.Stoppage, error) {
	args := m.Called(ctx, tenantID, machineID, from, to)
	if list, ok := args.Get(0).([]stoppage.Stoppage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoppageRepository) Classify(ctx context.Context, tenantID, id, reason string) error {
	args := m.Called(ctx, tenantID, id, reason)
	return args.Error(0)
}

// ScrapRepository is a mock for scrap.Repository.
type ScrapRepository struct {
	mock.Mock
}

func (m *ScrapRepository) Create(ctx context.Context, tenantID string, e *scrap.Entry) error {
	args := m.Called(ctx, tenantID, e)
	return args.Error(0)
}

func (m *ScrapRepository) List(ctx context.Context, tenantID, machineID string, limit, offset int) ([]scrap.Entry, error) {
	args := m.Called(ctx, tenantID, machineID, limit, offset)
	if list, ok := args.Get(0).([]scrap.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScrapRepository) ListWindow(ctx context.Context, tenantID, machineID string, from, to time.Time) ([]scrap.Entry, error) {
	args := m.Called(ctx, tenantID, machineID, from, to)
	if list, ok := args.Get(0).([]scrap.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// InventoryRepository is a mock for inventory.Repository.
type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) Create(ctx context.Context, tenantID string, item *inventory.Item) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *InventoryRepository) Get(ctx context.Context, tenantID, id string) (*inventory.Item, error) {
	args := m.Called(ctx, tenantID, id)
	if item, ok := args.Get(0).(*inventory.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InventoryRepository) Update(ctx context.Context, tenantID string, item *inventory.Item) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *InventoryRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *InventoryRepository) List(ctx context.Context, tenantID string, attentionOnly bool) ([]inventory.Item, error) {
	args := m.Called(ctx, tenantID, attentionOnly)
	if list, ok := args.Get(0).([]inventory.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ShiftRepository is a mock for shift.Repository.
type ShiftRepository struct {
	mock.Mock
}

func (m *ShiftRepository) Create(ctx context.Context, tenantID string, sh *shift.Shift) error {
	args := m.Called(ctx, tenantID, sh)
	return args.Error(0)
}

func (m *ShiftRepository) Get(ctx context.Context, tenantID, id string) (*shift.Shift, error) {
	args := m.Called(ctx, tenantID, id)
	if sh, ok := args.Get(0).(*shift.Shift); ok {
		return sh, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ShiftRepository) Update(ctx context.Context, tenantID string, sh *shift.Shift) error {
	args := m.Called(ctx, tenantID, sh)
	return args.Error(0)
}

func (m *ShiftRepository) List(ctx context.Context, tenantID string) ([]shift.Shift, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]shift.Shift); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
