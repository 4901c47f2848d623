package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
)

// TemplateSearcher defines the interface for the search service.
type TemplateSearcher interface {
	Search(ctx context.Context, term string, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error)
}

// NewSearchTemplatesHandler returns an HTTP handler searching public templates.
// @Summary Search public templates
// @Description Case-insensitive substring match on title and content. An empty query matches everything.
// @Tags templates
// @Produce json
// @Param query query string false "Search term"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} models.Page[models.TemplateWithViewer]
// @Router /api/templates/public/search [get]
func NewSearchTemplatesHandler(svc TemplateSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())
		term := r.URL.Query().Get("query")

		page, err := svc.Search(r.Context(), term, parsePageRequest(r), viewerEmail)
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
