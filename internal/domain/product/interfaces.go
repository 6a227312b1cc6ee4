package product

import "context"

// Repository provides persistence for products and product-machine links.
type Repository interface {
	Create(ctx context.Context, tenantID string, p *Product) error
	Get(ctx context.Context, tenantID, id string) (*Product, error)
	Update(ctx context.Context, tenantID string, p *Product) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]Product, error)

	CreateLink(ctx context.Context, tenantID string, link *MachineLink) error
	GetLink(ctx context.Context, tenantID, productID, machineID string) (*MachineLink, error)
	ListLinks(ctx context.Context, tenantID, productID string) ([]MachineLink, error)
}
