package system

import "time"

const (
	StatusHealthy = "healthy"

	APIName    = "Event Ticket Manager API"
	APIVersion = "1.0.0"
)

// HealthStatus is built fresh on every /health call.
type HealthStatus struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// APIInfo is built fresh on every /api/v1/info call.
type APIInfo struct {
	Name        string `json:"name" example:"Event Ticket Manager API"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"development"`
}
