package models

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username, 3-20 chars, letters/digits/underscore
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email address
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password, at least 6 chars
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Always true
	Success bool `json:"success"`

	// example: User created successfully
	Message string `json:"message"`

	// Summary of the created user
	User UserSummary `json:"user"`
}
