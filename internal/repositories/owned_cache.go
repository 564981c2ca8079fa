package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

// OwnedGamesCacheRepository caches Steam owned-games payloads in Redis so
// repeated dashboard loads do not hit the upstream API.
type OwnedGamesCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached payloads
}

// NewOwnedGamesCacheRepository creates a new repository instance with TTL
func NewOwnedGamesCacheRepository(client *redis.Client, expiration time.Duration) *OwnedGamesCacheRepository {
	return &OwnedGamesCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetOwnedGames fetches a cached payload for a Steam account
func (r *OwnedGamesCacheRepository) GetOwnedGames(ctx context.Context, steamID string) (*models.OwnedGamesData, error) {
	key := fmt.Sprintf("owned_games:%s", steamID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("owned games not found in cache for %s", steamID)
		}
		return nil, err
	}

	var data models.OwnedGamesData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"result", data.GameCount,
		"error", nil,
	)

	return &data, nil
}

// SetOwnedGames caches an upstream payload with expiration
func (r *OwnedGamesCacheRepository) SetOwnedGames(ctx context.Context, steamID string, data *models.OwnedGamesData) error {
	key := fmt.Sprintf("owned_games:%s", steamID)

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, raw, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"games", data.GameCount,
		"error", err,
	)

	return err
}
