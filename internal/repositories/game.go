package repositories

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"

	"gameworth/internal/logger"
	"gameworth/internal/models"
)

const gameColumns = "id, name, appid, price_usd, hours_to_beat, cost_per_hour, created_at, updated_at"

// sortColumns is the allow-list of columns the listing may be ordered by.
// Anything outside it falls back to name, so request input never reaches
// the ORDER BY clause as free text.
var sortColumns = map[string]string{
	"name":          "name",
	"price_usd":     "price_usd",
	"hours_to_beat": "hours_to_beat",
	"cost_per_hour": "cost_per_hour",
	"created_at":    "created_at",
}

const defaultSortColumn = "name"

var placeholderRe = regexp.MustCompile(`\$\d+`)

// GameListQuery is a matched pair of fetch and count statements over
// steam_games. Both share the same predicates and bound args; the fetch
// statement additionally orders and slices the rows. Limit and offset are
// embedded as integers that have already been clamped server-side.
type GameListQuery struct {
	FetchSQL string
	CountSQL string
	Args     []any
}

// BuildGameListQuery assembles the listing queries for a normalized filter.
// Predicates are added in a fixed order (search, minPrice, maxPrice,
// minHours, maxHours) so identical filters always produce identical SQL.
func BuildGameListQuery(f models.GameFilter) (GameListQuery, error) {
	var predicates []string
	var args []any

	addPredicate := func(expr string, arg any) {
		predicates = append(predicates, fmt.Sprintf(expr, len(args)+1))
		args = append(args, arg)
	}

	if f.Search != "" {
		addPredicate("name ILIKE $%d", "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		addPredicate("price_usd >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		addPredicate("price_usd <= $%d", *f.MaxPrice)
	}
	if f.MinHours != nil {
		addPredicate("hours_to_beat >= $%d", *f.MinHours)
	}
	if f.MaxHours != nil {
		addPredicate("hours_to_beat <= $%d", *f.MaxHours)
	}

	where := ""
	if len(predicates) > 0 {
		where = " WHERE " + strings.Join(predicates, " AND ")
	}

	sortCol, ok := sortColumns[f.SortBy]
	if !ok {
		sortCol = defaultSortColumn
	}

	q := GameListQuery{
		FetchSQL: fmt.Sprintf(
			"SELECT %s FROM steam_games%s ORDER BY %s %s LIMIT %d OFFSET %d",
			gameColumns, where, sortCol, f.Order, f.Limit, f.Offset(),
		),
		CountSQL: "SELECT COUNT(*) FROM steam_games" + where,
		Args:     args,
	}

	if err := q.checkPlaceholders(); err != nil {
		return GameListQuery{}, err
	}
	return q, nil
}

// checkPlaceholders verifies that both statements reference exactly as many
// placeholders as there are bound args. A mismatch means the builder itself
// is broken; the query must not be executed.
func (q GameListQuery) checkPlaceholders() error {
	for _, sql := range []string{q.CountSQL, q.FetchSQL} {
		if n := len(placeholderRe.FindAllString(sql, -1)); n != len(q.Args) {
			return fmt.Errorf("query has %d placeholders but %d args: %s", n, len(q.Args), sql)
		}
	}
	return nil
}

// GameReadRepository provides read access to the steam_games table.
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// List returns one page of catalog rows plus the total count of rows
// matching the same predicates.
func (r *GameReadRepository) List(ctx context.Context, f models.GameFilter) ([]models.GameDB, int64, error) {
	q, err := BuildGameListQuery(f)
	if err != nil {
		logger.Log.Errorw("game list query build failed", "error", err)
		return nil, 0, err
	}

	var total int64
	err = r.db.GetContext(ctx, &total, q.CountSQL, q.Args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(q.CountSQL), " "),
		"args", q.Args,
		"result", total,
		"error", err,
	)
	if err != nil {
		return nil, 0, err
	}

	games := []models.GameDB{}
	err = r.db.SelectContext(ctx, &games, q.FetchSQL, q.Args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(q.FetchSQL), " "),
		"args", q.Args,
		"result", len(games),
		"error", err,
	)
	if err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// GetByID fetches a single catalog row by primary key.
// Returns sql.ErrNoRows when no row matches.
func (r *GameReadRepository) GetByID(ctx context.Context, id int64) (*models.GameDB, error) {
	query := fmt.Sprintf("SELECT %s FROM steam_games WHERE id = $1", gameColumns)

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, id)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByAppID fetches a single catalog row by Steam application id.
// Returns sql.ErrNoRows when no row matches.
func (r *GameReadRepository) GetByAppID(ctx context.Context, appID int64) (*models.GameDB, error) {
	query := fmt.Sprintf("SELECT %s FROM steam_games WHERE appid = $1", gameColumns)

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, appID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{appID},
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Stats runs the fixed aggregate over rows where price, hours and
// cost-per-hour are all present.
func (r *GameReadRepository) Stats(ctx context.Context) (*models.GameStats, error) {
	const query = `
		SELECT COUNT(*)                        AS total_games,
		       COALESCE(AVG(price_usd), 0)     AS avg_price,
		       COALESCE(MIN(price_usd), 0)     AS min_price,
		       COALESCE(MAX(price_usd), 0)     AS max_price,
		       COALESCE(AVG(hours_to_beat), 0) AS avg_hours,
		       COALESCE(MIN(hours_to_beat), 0) AS min_hours,
		       COALESCE(MAX(hours_to_beat), 0) AS max_hours,
		       COALESCE(AVG(cost_per_hour), 0) AS avg_cost_per_hour
		FROM steam_games
		WHERE price_usd IS NOT NULL
		  AND hours_to_beat IS NOT NULL
		  AND cost_per_hour IS NOT NULL
	`

	var stats models.GameStats
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", stats,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
