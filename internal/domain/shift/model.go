package shift

import "time"

// Shift is a named work period with "HH:MM" start and end times and a derived
// duration in hours. DurationHours is nil when either time is malformed.
type Shift struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	Name          string    `json:"name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours *float64  `json:"duration_hours,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
