package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

// CategoryTemplatesLister defines the interface for the category listing service.
type CategoryTemplatesLister interface {
	ListByCategory(ctx context.Context, category string, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error)
}

// NewListTemplatesByCategoryHandler returns an HTTP handler listing public templates in a category.
// @Summary List public templates by category
// @Tags templates
// @Produce json
// @Param category path string true "Category" Enums(DEVELOPMENT, GENERAL, BUSINESS, CREATIVE, EDUCATION, LANGUAGE, ENTERTAINMENT, PRODUCTIVITY, OTHER)
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} models.Page[models.TemplateWithViewer]
// @Failure 400 {object} handlers.ApiResponse "Unknown category"
// @Router /api/templates/public/category/{category} [get]
func NewListTemplatesByCategoryHandler(svc CategoryTemplatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())
		category := chi.URLParam(r, "category")

		page, err := svc.ListByCategory(r.Context(), category, parsePageRequest(r), viewerEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(page)
	}
}
