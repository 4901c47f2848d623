package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
)

// ForDevsTemplatesLister defines the interface for the forDevs listing service.
type ForDevsTemplatesLister interface {
	ListByForDevs(ctx context.Context, forDevs bool, page models.PageRequest, viewerEmail string) (models.Page[models.TemplateWithViewer], error)
}

// NewListTemplatesByForDevsHandler returns an HTTP handler listing public templates by the forDevs flag.
// @Summary List public templates by forDevs flag
// @Tags templates
// @Produce json
// @Param forDevs path bool true "Developer-oriented flag"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} models.Page[models.TemplateWithViewer]
// @Failure 400 {object} handlers.ApiResponse "Malformed flag"
// @Router /api/templates/public/forDevs/{forDevs} [get]
func NewListTemplatesByForDevsHandler(svc ForDevsTemplatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())

		forDevs, err := strconv.ParseBool(chi.URLParam(r, "forDevs"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "forDevs must be true or false"})
			return
		}

		page, err := svc.ListByForDevs(r.Context(), forDevs, parsePageRequest(r), viewerEmail)
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
