package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// GameFilter is the normalized filter/sort/page request for the games
// listing. Malformed inputs never produce an error here: page and limit are
// clamped, unparseable numeric bounds are dropped, and the sort order is
// coerced to ASC or DESC.
type GameFilter struct {
	Search   string   // case-insensitive substring match on name, empty = absent
	MinPrice *float64 // nil = absent
	MaxPrice *float64
	MinHours *float64
	MaxHours *float64
	SortBy   string // raw requested column, allow-listed by the query builder
	Order    string // "ASC" or "DESC"
	Page     int    // >= 1
	Limit    int    // in [1, MaxLimit]
}

// Offset returns the row offset for the current page.
func (f GameFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ParseGameFilter builds a GameFilter from request query parameters.
func ParseGameFilter(q url.Values) GameFilter {
	f := GameFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		MinPrice: parseBound(q.Get("minPrice")),
		MaxPrice: parseBound(q.Get("maxPrice")),
		MinHours: parseBound(q.Get("minHours")),
		MaxHours: parseBound(q.Get("maxHours")),
		SortBy:   strings.TrimSpace(q.Get("sortBy")),
		Order:    normalizeOrder(q.Get("order")),
		Page:     clampPage(q.Get("page")),
		Limit:    clampLimit(q.Get("limit")),
	}
	return f
}

// parseBound returns nil for absent, unparseable or non-finite values.
func parseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// normalizeOrder maps a case-insensitive "desc" to DESC; everything else,
// including garbage, becomes ASC.
func normalizeOrder(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "desc") {
		return "DESC"
	}
	return "ASC"
}

func clampPage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

func clampLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
