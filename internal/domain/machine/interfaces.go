package machine

import "context"

// Repository provides persistence for machines.
type Repository interface {
	Create(ctx context.Context, tenantID string, m *Machine) error
	Get(ctx context.Context, tenantID, id string) (*Machine, error)
	Update(ctx context.Context, tenantID string, m *Machine) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string, activeOnly bool) ([]Machine, error)
}
