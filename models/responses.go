package models

// StatusResponse is the body of the admin liveness and readiness probes.
type StatusResponse struct {
	Status string `json:"status"`
}

// Probe statuses.
const (
	StatusAlive    = "alive"
	StatusReady    = "ready"
	StatusNotReady = "not ready"
	StatusDraining = "draining"
)
