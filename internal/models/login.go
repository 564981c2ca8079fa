package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Always true
	Success bool `json:"success"`

	// example: Login successful
	Message string `json:"message"`

	// JWT token for protected endpoints
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Public user summary
	User UserSummary `json:"user"`
}
