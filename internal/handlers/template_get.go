package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

// TemplateGetter defines the interface for the single-template read service.
type TemplateGetter interface {
	GetByID(ctx context.Context, id int64, viewerEmail string) (*models.TemplateWithViewer, error)
}

// NewGetTemplateHandler returns an HTTP handler reading a template by id.
// @Summary Get a template by id
// @Tags templates
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} models.TemplateWithViewer
// @Failure 404 {object} handlers.ApiResponse "Template not found"
// @Router /api/templates/{id} [get]
func NewGetTemplateHandler(svc TemplateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Template not found"})
			return
		}

		template, err := svc.GetByID(r.Context(), id, viewerEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Template not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(template)
	}
}
