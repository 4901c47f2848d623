package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

// TemplateCreator defines the interface for the template creation service.
type TemplateCreator interface {
	Create(ctx context.Context, fields models.TemplateFields, ownerEmail string) (*models.TemplateWithViewer, error)
}

// NewCreateTemplateHandler returns an HTTP handler creating a template owned by the caller.
// @Summary Create a template
// @Description Creates a template owned by the authenticated user. The isOfficial flag is always stored as false.
// @Tags templates
// @Accept json
// @Produce json
// @Param request body handlers.TemplateRequest true "Template payload"
// @Success 201 {object} models.TemplateWithViewer
// @Failure 400 {object} handlers.ApiResponse "Validation failed"
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/templates [post]
func NewCreateTemplateHandler(svc TemplateCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerEmail := middlewares.GetEmailFromContext(r.Context())

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

		template, err := svc.Create(r.Context(), req.fields(), ownerEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(template)
	}
}
