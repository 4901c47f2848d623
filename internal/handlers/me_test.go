package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfiler(ctrl)
	handler := authed(NewMeHandler(mockSvc), "alice@example.com")

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Profile(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{ID: 1, Email: "alice@example.com", Role: models.RoleUser}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var user models.UserDB
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&user))
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("user vanished", func(t *testing.T) {
		mockSvc.EXPECT().
			Profile(gomock.Any(), "alice@example.com").
			Return(nil, services.ErrUserNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMeFavoritesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFavoritesLister(ctrl)
	handler := authed(NewMeFavoritesHandler(mockSvc), "alice@example.com")

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			ListFavorites(gomock.Any(), "alice@example.com").
			Return([]models.FavoritedTemplate{
				{TemplateDB: models.TemplateDB{ID: 2}},
				{TemplateDB: models.TemplateDB{ID: 1}},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/users/me/favorites", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var favorites []models.FavoritedTemplate
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&favorites))
		assert.Len(t, favorites, 2)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		mockSvc.EXPECT().
			ListFavorites(gomock.Any(), "alice@example.com").
			Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/users/me/favorites", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
