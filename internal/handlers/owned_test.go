package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"gameworth/internal/models"
	"gameworth/internal/services"
)

func TestOwnedGamesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOwnedGamesGetter(ctrl)
	handler := NewOwnedGamesHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetOwnedGames(gomock.Any()).
			Return(&models.OwnedGamesData{
				GameCount: 1,
				Games:     []models.OwnedGame{{AppID: 620, Name: "Portal 2"}},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/owned-games", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"game_count":1`)
	})

	t.Run("private profile", func(t *testing.T) {
		mockSvc.EXPECT().GetOwnedGames(gomock.Any()).Return(nil, services.ErrNoOwnedGames)

		req := httptest.NewRequest(http.MethodGet, "/api/owned-games", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "profile may be private")
	})

	t.Run("upstream error", func(t *testing.T) {
		mockSvc.EXPECT().GetOwnedGames(gomock.Any()).Return(nil, errors.New("upstream 500"))

		req := httptest.NewRequest(http.MethodGet, "/api/owned-games", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Internal server error"`)
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	NewHealthHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"message":"Server is running"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	NotFoundHandler()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Endpoint not found"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
