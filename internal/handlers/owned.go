package handlers

import (
	"context"
	"errors"
	"net/http"

	"gameworth/internal/logger"
	"gameworth/internal/models"
	"gameworth/internal/services"
)

// OwnedGamesGetter defines the interface that the owned-games service must implement.
type OwnedGamesGetter interface {
	GetOwnedGames(ctx context.Context) (*models.OwnedGamesData, error)
}

// NewOwnedGamesHandler returns an HTTP handler for the owned-games proxy.
// @Summary Owned games
// @Description Proxies the Steam owned-games list for the configured account
// @Tags steam
// @Produce json
// @Success 200 {object} models.OwnedGamesResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} models.ErrorResponse "No games found (profile may be private)"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/owned-games [get]
// @Security BearerAuth
func NewOwnedGamesHandler(svc OwnedGamesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.GetOwnedGames(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrNoOwnedGames) {
				respondError(w, http.StatusNotFound, "No games found (profile may be private)")
				return
			}
			logger.Log.Errorw("owned games fetch failed", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.OwnedGamesResponse{Success: true, Data: *data})
	}
}
