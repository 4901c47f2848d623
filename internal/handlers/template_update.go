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

// TemplateUpdater defines the interface for the template update service.
type TemplateUpdater interface {
	Update(ctx context.Context, id int64, fields models.TemplateFields, ownerEmail string) (*models.TemplateWithViewer, error)
}

// NewUpdateTemplateHandler returns an HTTP handler replacing a template's content fields.
// @Summary Update a template
// @Description Full replacement of the editable fields. Only the owner may update a template.
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template id"
// @Param request body handlers.TemplateRequest true "Template payload"
// @Success 200 {object} models.TemplateWithViewer
// @Failure 400 {object} handlers.ApiResponse "Validation failed, template missing, or not the owner"
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/templates/{id} [put]
func NewUpdateTemplateHandler(svc TemplateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid template id"})
			return
		}

		var req TemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: err.Error()})
			return
		}

		template, err := svc.Update(r.Context(), id, req.fields(), ownerEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound),
				errors.Is(err, services.ErrForbidden),
				errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrInvalidCategory):
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
		json.NewEncoder(w).Encode(template)
	}
}
