package models

// Pagination describes the slice of the catalog returned by the listing
// endpoint.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalGames   int64 `json:"totalGames"`
	GamesPerPage int   `json:"gamesPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination derives pagination metadata from a total row count and the
// effective page/limit.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalGames:   total,
		GamesPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// GamesData is the payload of a listing response.
type GamesData struct {
	Games      []GameDB   `json:"games"`
	Pagination Pagination `json:"pagination"`
}

// GamesResponse represents a successful listing response
// swagger:model GamesResponse
type GamesResponse struct {
	// Always true
	Success bool `json:"success"`

	Data GamesData `json:"data"`
}

// GameResponse represents a single-record response
// swagger:model GameResponse
type GameResponse struct {
	// Always true
	Success bool `json:"success"`

	Data GameDB `json:"data"`
}
