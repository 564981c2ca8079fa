package models

// ErrorResponse is the uniform error body for every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Human-readable error message
	// example: Internal server error
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	// Always true
	Success bool `json:"success"`

	// example: Server is running
	Message string `json:"message"`

	// RFC3339 server time
	// example: 2025-01-01T00:00:00Z
	Timestamp string `json:"timestamp"`
}
