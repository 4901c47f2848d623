package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
)

// PopularTemplatesLister defines the interface for the popular listing service.
type PopularTemplatesLister interface {
	ListPopular(ctx context.Context, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error)
}

// NewListPopularTemplatesHandler returns an HTTP handler listing public templates by usage.
// @Summary List popular public templates
// @Description Public templates ordered by usage count descending.
// @Tags templates
// @Produce json
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} models.Page[models.TemplateWithViewer]
// @Router /api/templates/public/popular [get]
func NewListPopularTemplatesHandler(svc PopularTemplatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())

		page, err := svc.ListPopular(r.Context(), parsePageRequest(r), viewerEmail)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(page)
	}
}
