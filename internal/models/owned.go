package models

// OwnedGame is a single entry from the Steam GetOwnedGames payload.
type OwnedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int64  `json:"playtime_forever"` // minutes
	ImgIconURL      string `json:"img_icon_url,omitempty"`
}

// OwnedGamesData is the upstream owned-games payload as served to clients
// and cached in Redis.
type OwnedGamesData struct {
	GameCount int64       `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

// OwnedGamesResponse represents a successful owned-games response
// swagger:model OwnedGamesResponse
type OwnedGamesResponse struct {
	// Always true
	Success bool `json:"success"`

	Data OwnedGamesData `json:"data"`
}
