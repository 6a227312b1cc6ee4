package inventory

import "time"

// Status is the derived stock status of an item.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDepleted Status = "depleted"
	StatusExpired  Status = "expired"
)

// Attention reasons set by the deriver.
const (
	ReasonLowStock   = "low_stock"
	ReasonHighStock  = "high_stock"
	ReasonNearExpiry = "near_expiry"
)

// Item is a stock-keeping unit with derived status and attention fields.
// Status, NeedsAttention, and AttentionReason are recomputed on every write.
type Item struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id"`
	Name            string     `json:"name"`
	SKU             string     `json:"sku"`
	CurrentQty      float64    `json:"current_qty"`
	MinQty          float64    `json:"min_qty"`
	MaxQty          *float64   `json:"max_qty,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	Status          Status     `json:"status"`
	NeedsAttention  bool       `json:"needs_attention"`
	AttentionReason string     `json:"attention_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
