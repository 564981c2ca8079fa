package models

import "time"

// GameDB represents a catalog row in the steam_games table. Rows are
// populated out-of-band; this service only reads them.
type GameDB struct {
	ID          int64     `json:"id" db:"id"`                       // Primary key
	Name        string    `json:"name" db:"name"`                   // Display name
	AppID       int64     `json:"appid" db:"appid"`                 // Steam application id
	PriceUSD    float64   `json:"price_usd" db:"price_usd"`         // Price in USD
	HoursToBeat *float64  `json:"hours_to_beat" db:"hours_to_beat"` // Estimated completion time, nullable
	CostPerHour *float64  `json:"cost_per_hour" db:"cost_per_hour"` // Derived by the store, nullable
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
