package services

import (
	"context"
	"database/sql"
	"errors"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// ErrGameNotFound is returned when no catalog row matches the lookup.
var ErrGameNotFound = errors.New("game not found")

// GameReader defines catalog read operations used by the service.
type GameReader interface {
	List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error)
	GetByID(ctx context.Context, id int64) (*models.GameDB, error)
	GetByAppID(ctx context.Context, appID int64) (*models.GameDB, error)
	Stats(ctx context.Context) (*models.GameStats, error)
}

// GamesService serves the read-only catalog surface.
type GamesService struct {
	repo GameReader
}

// NewGamesService creates a new GamesService instance.
func NewGamesService(repo GameReader) *GamesService {
	return &GamesService{repo: repo}
}

// List returns one catalog page plus pagination metadata derived from the
// total count.
func (svc *GamesService) List(ctx context.Context, f models.GameFilter) (*models.GamesData, error) {
	games, total, err := svc.repo.List(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list games", "err", err)
		return nil, err
	}

	return &models.GamesData{
		Games:      games,
		Pagination: models.NewPagination(total, f.Page, f.Limit),
	}, nil
}

// GetByID returns one catalog row by primary key.
func (svc *GamesService) GetByID(ctx context.Context, id int64) (*models.GameDB, error) {
	game, err := svc.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get game", "id", id, "err", err)
		return nil, err
	}
	return game, nil
}

// GetByAppID returns one catalog row by Steam application id.
func (svc *GamesService) GetByAppID(ctx context.Context, appID int64) (*models.GameDB, error) {
	game, err := svc.repo.GetByAppID(ctx, appID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get game", "appid", appID, "err", err)
		return nil, err
	}
	return game, nil
}

// Stats returns the fixed aggregate over the catalog.
func (svc *GamesService) Stats(ctx context.Context) (*models.GameStats, error) {
	stats, err := svc.repo.Stats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate game stats", "err", err)
		return nil, err
	}
	return stats, nil
}
