package handlers

import (
	"context"
	"net/http"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// GamesLister defines the interface that the listing service must implement.
type GamesLister interface {
	List(ctx context.Context, f models.GameFilter) (*models.GamesData, error)
}

// NewGamesListHandler returns an HTTP handler for the catalog listing.
// @Summary List games
// @Description Returns a filtered, sorted and paginated slice of the catalog. Malformed page/limit values are clamped, never rejected.
// @Tags games
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minHours query number false "Minimum hours to beat"
// @Param maxHours query number false "Maximum hours to beat"
// @Param sortBy query string false "One of name, price_usd, hours_to_beat, cost_per_hour, created_at"
// @Param order query string false "ASC or DESC"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 20, max 100"
// @Success 200 {object} models.GamesResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/games [get]
func NewGamesListHandler(svc GamesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := models.ParseGameFilter(r.URL.Query())

		data, err := svc.List(r.Context(), f)
		if err != nil {
			logger.Log.Errorw("games listing failed", "err", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.GamesResponse{
			Success: true,
			Data:    *data,
		})
	}
}
