package scrap

import "time"

// Severity grades how costly a scrap event is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Entry is a logged quantity of discarded material.
type Entry struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	MachineID  string    `json:"machine_id"`
	OrderID    *string   `json:"order_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	Quantity   float64   `json:"quantity"`
	Severity   Severity  `json:"severity"`
	Reason     string    `json:"reason,omitempty"`
}
