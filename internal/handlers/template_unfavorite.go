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

// Unfavoriter defines the interface for the favorite removal service.
type Unfavoriter interface {
	Unfavorite(ctx context.Context, userEmail string, templateID int64) error
}

// NewUnfavoriteTemplateHandler returns an HTTP handler removing a template from the caller's favorites.
// Removing a template that was never favorited succeeds without touching the counter.
// @Summary Unfavorite a template
// @Tags favorites
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} handlers.ApiResponse "Template unfavorited"
// @Failure 400 {object} handlers.ApiResponse "Template missing"
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/templates/{id}/favorite [delete]
func NewUnfavoriteTemplateHandler(svc Unfavoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid template id"})
			return
		}

		if err := svc.Unfavorite(r.Context(), userEmail, id); err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound),
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
		json.NewEncoder(w).Encode(ApiResponse{Success: true, Message: "Template unfavorited"})
	}
}
