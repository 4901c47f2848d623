package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
)

// PublicTemplatesLister defines the interface for the public listing service.
type PublicTemplatesLister interface {
	ListPublic(ctx context.Context, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error)
}

// NewListPublicTemplatesHandler returns an HTTP handler listing public templates.
// @Summary List public templates
// @Description Returns one page of public templates, annotated with isFavorited for an authenticated viewer.
// @Tags templates
// @Produce json
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortDir query string false "ASC or DESC" default(DESC)
// @Success 200 {object} models.Page[models.TemplateWithViewer]
// @Router /api/templates/public [get]
func NewListPublicTemplatesHandler(svc PublicTemplatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())

		page, err := svc.ListPublic(r.Context(), parsePageRequest(r), viewerEmail)
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
