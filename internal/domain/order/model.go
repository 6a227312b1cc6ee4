package order

import "time"

// Status is the lifecycle state of a production order.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// Order is a production order for a quantity of a product on a machine.
type Order struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Number      string     `json:"number"`
	ProductID   string     `json:"product_id"`
	MachineID   string     `json:"machine_id"`
	LinkID      string     `json:"link_id"`
	TargetQty   int64      `json:"target_qty"`
	ProducedQty int64      `json:"produced_qty"`
	Status      Status     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// Cycle is one unit-production event on a machine.
type Cycle struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	OrderID    string    `json:"order_id"`
	MachineID  string    `json:"machine_id"`
	RecordedAt time.Time `json:"recorded_at"`
	Defective  bool      `json:"defective"`
}
