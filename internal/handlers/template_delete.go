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
	"github.com/promptcraft/templates/internal/services"
)

// TemplateDeleter defines the interface for the template deletion service.
type TemplateDeleter interface {
	Delete(ctx context.Context, id int64, ownerEmail string) error
}

// NewDeleteTemplateHandler returns an HTTP handler deleting a caller-owned template.
// @Summary Delete a template
// @Description Only the owner may delete a template. Favorite rows pointing at it are removed with it.
// @Tags templates
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} handlers.ApiResponse "Template deleted successfully"
// @Failure 400 {object} handlers.ApiResponse "Template missing or not the owner"
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/templates/{id} [delete]
func NewDeleteTemplateHandler(svc TemplateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid template id"})
			return
		}

		if err := svc.Delete(r.Context(), id, ownerEmail); err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound),
				errors.Is(err, services.ErrForbidden),
				errors.Is(err, services.ErrUserNotFound):
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
		json.NewEncoder(w).Encode(ApiResponse{Success: true, Message: "Template deleted successfully"})
	}
}
