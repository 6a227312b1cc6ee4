package stoppage

import "time"

// Stoppage is a machine-down event with a duration and an optional reason.
// A stoppage starts unclassified; classifying it assigns the reason.
type Stoppage struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	MachineID    string     `json:"machine_id"`
	OrderID      *string    `json:"order_id,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	DurationSecs float64    `json:"duration_secs"`
	Reason       string     `json:"reason,omitempty"`
	Classified   bool       `json:"classified"`
	CreatedAt    time.Time  `json:"created_at"`
}
