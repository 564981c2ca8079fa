package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"gameworth/internal/models"
	"gameworth/internal/services"
)

func TestOwnedGamesService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockOwnedGamesFetcher(ctrl)
	mockCache := services.NewMockOwnedGamesCache(ctrl)
	svc := services.NewOwnedGamesService(mockFetcher, mockCache, "76561198000000000")

	cached := &models.OwnedGamesData{GameCount: 2, Games: []models.OwnedGame{
		{AppID: 620, Name: "Portal 2"},
		{AppID: 400, Name: "Portal"},
	}}
	mockCache.EXPECT().GetOwnedGames(gomock.Any(), "76561198000000000").Return(cached, nil)
	// no fetcher call expected

	data, err := svc.GetOwnedGames(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), data.GameCount)
}

func TestOwnedGamesService_CacheMissFetchesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockOwnedGamesFetcher(ctrl)
	mockCache := services.NewMockOwnedGamesCache(ctrl)
	svc := services.NewOwnedGamesService(mockFetcher, mockCache, "sid")

	fetched := &models.OwnedGamesData{GameCount: 1, Games: []models.OwnedGame{{AppID: 620, Name: "Portal 2"}}}

	mockCache.EXPECT().GetOwnedGames(gomock.Any(), "sid").Return(nil, errors.New("cache miss"))
	mockFetcher.EXPECT().FetchOwnedGames(gomock.Any(), "sid").Return(fetched, nil)
	mockCache.EXPECT().SetOwnedGames(gomock.Any(), "sid", fetched).Return(nil)

	data, err := svc.GetOwnedGames(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fetched, data)
}

func TestOwnedGamesService_CacheSetFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockOwnedGamesFetcher(ctrl)
	mockCache := services.NewMockOwnedGamesCache(ctrl)
	svc := services.NewOwnedGamesService(mockFetcher, mockCache, "sid")

	fetched := &models.OwnedGamesData{GameCount: 1, Games: []models.OwnedGame{{AppID: 620}}}

	mockCache.EXPECT().GetOwnedGames(gomock.Any(), "sid").Return(nil, errors.New("cache miss"))
	mockFetcher.EXPECT().FetchOwnedGames(gomock.Any(), "sid").Return(fetched, nil)
	mockCache.EXPECT().SetOwnedGames(gomock.Any(), "sid", fetched).Return(errors.New("redis down"))

	data, err := svc.GetOwnedGames(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fetched, data)
}

func TestOwnedGamesService_EmptyProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockOwnedGamesFetcher(ctrl)
	mockCache := services.NewMockOwnedGamesCache(ctrl)
	svc := services.NewOwnedGamesService(mockFetcher, mockCache, "sid")
	ctx := context.Background()

	t.Run("nil payload", func(t *testing.T) {
		mockCache.EXPECT().GetOwnedGames(gomock.Any(), "sid").Return(nil, errors.New("cache miss"))
		mockFetcher.EXPECT().FetchOwnedGames(gomock.Any(), "sid").Return(nil, nil)

		_, err := svc.GetOwnedGames(ctx)
		assert.ErrorIs(t, err, services.ErrNoOwnedGames)
	})

	t.Run("zero game count", func(t *testing.T) {
		mockCache.EXPECT().GetOwnedGames(gomock.Any(), "sid").Return(nil, errors.New("cache miss"))
		mockFetcher.EXPECT().FetchOwnedGames(gomock.Any(), "sid").
			Return(&models.OwnedGamesData{GameCount: 0}, nil)

		_, err := svc.GetOwnedGames(ctx)
		assert.ErrorIs(t, err, services.ErrNoOwnedGames)
	})
}

func TestOwnedGamesService_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := services.NewMockOwnedGamesFetcher(ctrl)
	svc := services.NewOwnedGamesService(mockFetcher, nil, "sid")

	mockFetcher.EXPECT().FetchOwnedGames(gomock.Any(), "sid").Return(nil, errors.New("upstream 500"))

	_, err := svc.GetOwnedGames(context.Background())
	assert.EqualError(t, err, "upstream 500")
}
