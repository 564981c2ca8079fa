package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

const ownedGamesPath = "/IPlayerService/GetOwnedGames/v0001/"

// SteamFacade calls the Steam Web API with server-held credentials.
type SteamFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSteamFacade creates a new facade. A nil client falls back to a default
// with a 10s timeout.
func NewSteamFacade(baseURL, apiKey string, client *http.Client) *SteamFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SteamFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// ownedGamesEnvelope mirrors the upstream response shape. A private profile
// comes back as an empty "response" object.
type ownedGamesEnvelope struct {
	Response struct {
		GameCount int64              `json:"game_count"`
		Games     []models.OwnedGame `json:"games"`
	} `json:"response"`
}

// FetchOwnedGames fetches the owned-games list for a Steam account.
// Returns (nil, nil) when the upstream reports no games, which is what a
// private profile looks like too.
func (f *SteamFacade) FetchOwnedGames(ctx context.Context, steamID string) (*models.OwnedGamesData, error) {
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "1")
	params.Set("format", "json")

	reqURL := f.baseURL + ownedGamesPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("steam api request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("steam api returned status %d", resp.StatusCode)
		logger.Log.Errorw("steam api error", "status", resp.StatusCode)
		return nil, err
	}

	var envelope ownedGamesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Log.Errorw("steam api response decode failed", "error", err)
		return nil, err
	}

	logger.Log.Infow("steam api owned games fetched",
		"steam_id", steamID,
		"game_count", envelope.Response.GameCount,
	)

	if envelope.Response.GameCount == 0 || len(envelope.Response.Games) == 0 {
		return nil, nil
	}

	return &models.OwnedGamesData{
		GameCount: envelope.Response.GameCount,
		Games:     envelope.Response.Games,
	}, nil
}
