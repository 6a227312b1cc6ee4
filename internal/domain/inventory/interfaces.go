package inventory

import "context"

// Repository provides persistence for inventory items.
type Repository interface {
	Create(ctx context.Context, tenantID string, item *Item) error
	Get(ctx context.Context, tenantID, id string) (*Item, error)
	Update(ctx context.Context, tenantID string, item *Item) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string, attentionOnly bool) ([]Item, error)
}
