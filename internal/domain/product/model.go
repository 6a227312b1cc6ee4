package product

import "time"

// Product is an article a tenant manufactures.
type Product struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Unit      string    `json:"unit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MachineLink binds a product to a machine it can be produced on,
// carrying the machine-specific production parameters.
type MachineLink struct {
	ID                 string    `json:"id"`
	TenantID           string    `json:"tenant_id"`
	ProductID          string    `json:"product_id"`
	MachineID          string    `json:"machine_id"`
	IdealCycleTimeSecs float64   `json:"ideal_cycle_time_secs"`
	SetupTimeSecs      float64   `json:"setup_time_secs"`
	IdealRatePerHour   float64   `json:"ideal_rate_per_hour"`
	CreatedAt          time.Time `json:"created_at"`
}
