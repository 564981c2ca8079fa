package handlers

import (
	"context"
	"net/http"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// StatsGetter defines the interface that the statistics service must implement.
type StatsGetter interface {
	Stats(ctx context.Context) (*models.GameStats, error)
}

// NewStatsHandler returns an HTTP handler for the aggregate statistics.
// @Summary Catalog statistics
// @Description Aggregates over rows where price, hours and cost-per-hour are all present
// @Tags games
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/games/stats [get]
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("stats aggregation failed", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.StatsResponse{Success: true, Data: *stats})
	}
}
