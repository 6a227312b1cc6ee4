package shift

import "context"

// Repository provides persistence for shifts.
type Repository interface {
	Create(ctx context.Context, tenantID string, sh *Shift) error
	Get(ctx context.Context, tenantID, id string) (*Shift, error)
	Update(ctx context.Context, tenantID string, sh *Shift) error
	List(ctx context.Context, tenantID string) ([]Shift, error)
}
