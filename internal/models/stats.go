package models

// GameStats holds aggregate statistics over catalog rows where price, hours
// and cost-per-hour are all present.
type GameStats struct {
	TotalGames     int64   `json:"total_games" db:"total_games"`
	AvgPrice       float64 `json:"avg_price" db:"avg_price"`
	MinPrice       float64 `json:"min_price" db:"min_price"`
	MaxPrice       float64 `json:"max_price" db:"max_price"`
	AvgHours       float64 `json:"avg_hours" db:"avg_hours"`
	MinHours       float64 `json:"min_hours" db:"min_hours"`
	MaxHours       float64 `json:"max_hours" db:"max_hours"`
	AvgCostPerHour float64 `json:"avg_cost_per_hour" db:"avg_cost_per_hour"`
}

// StatsResponse represents a successful statistics response
// swagger:model StatsResponse
type StatsResponse struct {
	// Always true
	Success bool `json:"success"`

	Data GameStats `json:"data"`
}
