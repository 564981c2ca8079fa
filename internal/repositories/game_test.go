package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"gameworth/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestBuildGameListQuery_NoFilters(t *testing.T) {
	f := models.GameFilter{SortBy: "name", Order: "ASC", Page: 1, Limit: 20}

	q, err := BuildGameListQuery(f)
	assert.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM steam_games", q.CountSQL)
	assert.Equal(t,
		"SELECT "+gameColumns+" FROM steam_games ORDER BY name ASC LIMIT 20 OFFSET 0",
		q.FetchSQL,
	)
	assert.Empty(t, q.Args)
}

func TestBuildGameListQuery_AllFilters(t *testing.T) {
	f := models.GameFilter{
		Search:   "portal",
		MinPrice: fptr(5),
		MaxPrice: fptr(60),
		MinHours: fptr(2),
		MaxHours: fptr(100),
		SortBy:   "price_usd",
		Order:    "DESC",
		Page:     2,
		Limit:    10,
	}

	q, err := BuildGameListQuery(f)
	assert.NoError(t, err)

	wantWhere := " WHERE name ILIKE $1 AND price_usd >= $2 AND price_usd <= $3" +
		" AND hours_to_beat >= $4 AND hours_to_beat <= $5"
	assert.Equal(t, "SELECT COUNT(*) FROM steam_games"+wantWhere, q.CountSQL)
	assert.Equal(t,
		"SELECT "+gameColumns+" FROM steam_games"+wantWhere+
			" ORDER BY price_usd DESC LIMIT 10 OFFSET 10",
		q.FetchSQL,
	)
	assert.Equal(t, []any{"%portal%", 5.0, 60.0, 2.0, 100.0}, q.Args)
}

func TestBuildGameListQuery_Deterministic(t *testing.T) {
	f := models.GameFilter{
		Search:   "half",
		MaxPrice: fptr(30),
		SortBy:   "created_at",
		Order:    "ASC",
		Page:     1,
		Limit:    20,
	}

	q1, err1 := BuildGameListQuery(f)
	q2, err2 := BuildGameListQuery(f)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, q1, q2)
}

func TestBuildGameListQuery_SortAllowList(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"name", "ORDER BY name ASC"},
		{"price_usd", "ORDER BY price_usd ASC"},
		{"hours_to_beat", "ORDER BY hours_to_beat ASC"},
		{"cost_per_hour", "ORDER BY cost_per_hour ASC"},
		{"created_at", "ORDER BY created_at ASC"},
		{"", "ORDER BY name ASC"},
		{"id", "ORDER BY name ASC"},
		{"password_hash", "ORDER BY name ASC"},
		{"name; DROP TABLE steam_games--", "ORDER BY name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			f := models.GameFilter{SortBy: tt.sortBy, Order: "ASC", Page: 1, Limit: 20}
			q, err := BuildGameListQuery(f)
			assert.NoError(t, err)
			assert.Contains(t, q.FetchSQL, tt.want)
		})
	}
}

func TestBuildGameListQuery_CountAndFetchShareArgs(t *testing.T) {
	f := models.GameFilter{
		Search:   "elden",
		MinHours: fptr(10),
		SortBy:   "hours_to_beat",
		Order:    "DESC",
		Page:     3,
		Limit:    25,
	}

	q, err := BuildGameListQuery(f)
	assert.NoError(t, err)

	countPlaceholders := placeholderRe.FindAllString(q.CountSQL, -1)
	fetchPlaceholders := placeholderRe.FindAllString(q.FetchSQL, -1)
	assert.Equal(t, countPlaceholders, fetchPlaceholders)
	assert.Len(t, q.Args, len(countPlaceholders))
}

func TestGameListQuery_CheckPlaceholders(t *testing.T) {
	q := GameListQuery{
		FetchSQL: "SELECT * FROM steam_games WHERE name ILIKE $1",
		CountSQL: "SELECT COUNT(*) FROM steam_games WHERE name ILIKE $1",
		Args:     []any{"%x%", "extra"},
	}
	assert.Error(t, q.checkPlaceholders())

	q.Args = []any{"%x%"}
	assert.NoError(t, q.checkPlaceholders())
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func gameRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "appid", "price_usd", "hours_to_beat", "cost_per_hour", "created_at", "updated_at",
	})
}

func TestGameReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	f := models.GameFilter{Search: "portal", SortBy: "price_usd", Order: "DESC", Page: 1, Limit: 5}
	q, err := BuildGameListQuery(f)
	assert.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(q.CountSQL)).
		WithArgs("%portal%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(q.FetchSQL)).
		WithArgs("%portal%").
		WillReturnRows(gameRows().
			AddRow(1, "Portal 2", 620, 9.99, 8.5, 1.18, now, now).
			AddRow(2, "Portal", 400, 7.99, 3.0, 2.66, now, now))

	repo := NewGameReadRepository(db)
	games, total, err := repo.List(context.Background(), f)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, games, 2)
	assert.Equal(t, "Portal 2", games[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGameReadRepository_List_CountError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	f := models.GameFilter{SortBy: "name", Order: "ASC", Page: 1, Limit: 20}

	mock.ExpectQuery("SELECT COUNT").WillReturnError(sql.ErrConnDone)

	repo := NewGameReadRepository(db)
	_, _, err := repo.List(context.Background(), f)
	assert.Error(t, err)
}

func TestGameReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(gameRows().AddRow(7, "Hades", 1145360, 24.99, 21.5, 1.16, now, now))

	repo := NewGameReadRepository(db)
	game, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "Hades", game.Name)
	assert.Equal(t, int64(1145360), game.AppID)
}

func TestGameReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(999999)).
		WillReturnError(sql.ErrNoRows)

	repo := NewGameReadRepository(db)
	game, err := repo.GetByID(context.Background(), 999999)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, game)
}

func TestGameReadRepository_GetByAppID(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE appid = $1")).
		WithArgs(int64(620)).
		WillReturnRows(gameRows().AddRow(1, "Portal 2", 620, 9.99, 8.5, 1.18, now, now))

	repo := NewGameReadRepository(db)
	game, err := repo.GetByAppID(context.Background(), 620)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), game.ID)
}

func TestGameReadRepository_Stats(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_games", "avg_price", "min_price", "max_price",
			"avg_hours", "min_hours", "max_hours", "avg_cost_per_hour",
		}).AddRow(42, 19.99, 0.99, 69.99, 25.5, 1.5, 120.0, 1.31))

	repo := NewGameReadRepository(db)
	stats, err := repo.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalGames)
	assert.Equal(t, 19.99, stats.AvgPrice)
	assert.Equal(t, 1.31, stats.AvgCostPerHour)
}
