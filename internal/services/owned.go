package services

import (
	"context"
	"errors"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// ErrNoOwnedGames is returned when the upstream reports no games, which is
// also what a private profile looks like.
var ErrNoOwnedGames = errors.New("no games found (profile may be private)")

// OwnedGamesFetcher fetches the owned-games payload from the Steam Web API.
// A (nil, nil) result means the upstream returned an empty or missing list.
type OwnedGamesFetcher interface {
	FetchOwnedGames(ctx context.Context, steamID string) (*models.OwnedGamesData, error)
}

// OwnedGamesCache caches owned-games payloads.
type OwnedGamesCache interface {
	GetOwnedGames(ctx context.Context, steamID string) (*models.OwnedGamesData, error)
	SetOwnedGames(ctx context.Context, steamID string, data *models.OwnedGamesData) error
}

// OwnedGamesService serves the owned-games proxy with a cache in front of
// the upstream API.
type OwnedGamesService struct {
	fetcher OwnedGamesFetcher
	cache   OwnedGamesCache
	steamID string
}

// NewOwnedGamesService creates a new service instance for a fixed account.
func NewOwnedGamesService(fetcher OwnedGamesFetcher, cache OwnedGamesCache, steamID string) *OwnedGamesService {
	return &OwnedGamesService{
		fetcher: fetcher,
		cache:   cache,
		steamID: steamID,
	}
}

// GetOwnedGames returns the owned-games payload for the configured account,
// consulting the cache first and populating it on a miss.
func (svc *OwnedGamesService) GetOwnedGames(ctx context.Context) (*models.OwnedGamesData, error) {
	if svc.cache != nil {
		if data, err := svc.cache.GetOwnedGames(ctx, svc.steamID); err == nil {
			return data, nil
		}
	}

	data, err := svc.fetcher.FetchOwnedGames(ctx, svc.steamID)
	if err != nil {
		logger.Log.Errorw("failed to fetch owned games", "steam_id", svc.steamID, "err", err)
		return nil, err
	}
	if data == nil || data.GameCount == 0 {
		return nil, ErrNoOwnedGames
	}

	if svc.cache != nil {
		if err := svc.cache.SetOwnedGames(ctx, svc.steamID, data); err != nil {
			logger.Log.Errorw("failed to cache owned games", "err", err)
		}
	}

	return data, nil
}
