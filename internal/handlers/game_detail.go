package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gameworth/internal/logger"
	"gameworth/internal/models"
	"gameworth/internal/services"
)

// GameGetter defines the single-record lookups used by the detail handlers.
type GameGetter interface {
	GetByID(ctx context.Context, id int64) (*models.GameDB, error)
	GetByAppID(ctx context.Context, appID int64) (*models.GameDB, error)
}

// NewGameByIDHandler returns an HTTP handler for a single record by primary key.
// @Summary Get game by id
// @Tags games
// @Produce json
// @Param id path int true "Game id"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} models.ErrorResponse "Non-numeric id"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/games/{id} [get]
func NewGameByIDHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid game ID")
			return
		}

		game, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrGameNotFound) {
				respondError(w, http.StatusNotFound, "Game not found")
				return
			}
			logger.Log.Errorw("game lookup failed", "id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.GameResponse{Success: true, Data: *game})
	}
}

// NewGameByAppIDHandler returns an HTTP handler for a single record by Steam appid.
// @Summary Get game by Steam appid
// @Tags games
// @Produce json
// @Param appid path int true "Steam application id"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} models.ErrorResponse "Non-numeric appid"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/games/steam/{appid} [get]
func NewGameByAppIDHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID, err := strconv.ParseInt(chi.URLParam(r, "appid"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid app ID")
			return
		}

		game, err := svc.GetByAppID(r.Context(), appID)
		if err != nil {
			if errors.Is(err, services.ErrGameNotFound) {
				respondError(w, http.StatusNotFound, "Game not found")
				return
			}
			logger.Log.Errorw("game lookup failed", "appid", appID, "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.GameResponse{Success: true, Data: *game})
	}
}
