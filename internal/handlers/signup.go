package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gameworth/internal/logger"
	"gameworth/internal/models"
	"gameworth/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.SignupResponse "User created"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username, email and password are required")
			return
		}

		user, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				respondError(w, http.StatusConflict, "Username already exists")
			case errors.Is(err, services.ErrEmailExists):
				respondError(w, http.StatusConflict, "Email already exists")
			case errors.Is(err, services.ErrUsernameLength),
				errors.Is(err, services.ErrUsernameCharset),
				errors.Is(err, services.ErrInvalidEmail),
				errors.Is(err, services.ErrPasswordTooShort):
				respondError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("signup failed", "err", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondJSON(w, http.StatusCreated, models.SignupResponse{
			Success: true,
			Message: "User created successfully",
			User: models.UserSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
			},
		})
	}
}
