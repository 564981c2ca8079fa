package handlers

import (
	"net/http"
	"time"

	"gameworth/internal/models"
)

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, models.HealthResponse{
			Success:   true,
			Message:   "Server is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NotFoundHandler answers every unmatched route with the uniform JSON body.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Endpoint not found")
	}
}
