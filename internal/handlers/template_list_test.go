package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
)

func TestListPublicTemplatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPublicTemplatesLister(ctrl)
	handler := NewListPublicTemplatesHandler(mockSvc)

	t.Run("pagination params are forwarded", func(t *testing.T) {
		mockSvc.EXPECT().
			ListPublic(gomock.Any(),
				models.PageRequest{Page: 2, Size: 5, SortBy: "title", SortDir: "ASC"},
				"").
			Return(models.Page[models.TemplateWithViewer]{
				Content:       []models.TemplateWithViewer{},
				TotalElements: 11,
				TotalPages:    3,
				Number:        2,
				Size:          5,
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/templates/public?page=2&size=5&sortBy=title&sortDir=ASC", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var page models.Page[models.TemplateWithViewer]
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		assert.Equal(t, int64(11), page.TotalElements)
		assert.Equal(t, 2, page.Number)
	})

	t.Run("missing params fall back to defaults", func(t *testing.T) {
		mockSvc.EXPECT().
			ListPublic(gomock.Any(),
				models.PageRequest{Page: 0, Size: 20, SortBy: "createdAt", SortDir: "DESC"},
				"").
			Return(models.Page[models.TemplateWithViewer]{Content: []models.TemplateWithViewer{}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/templates/public", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSearchTemplatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTemplateSearcher(ctrl)
	handler := NewSearchTemplatesHandler(mockSvc)

	mockSvc.EXPECT().
		Search(gomock.Any(), "review", gomock.Any(), "").
		Return(models.Page[models.TemplateWithViewer]{Content: []models.TemplateWithViewer{}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/templates/public/search?query=review", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
