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

// Favoriter defines the interface for the favorite creation service.
type Favoriter interface {
	Favorite(ctx context.Context, userEmail string, templateID int64) error
}

// NewFavoriteTemplateHandler returns an HTTP handler adding a template to the caller's favorites.
// @Summary Favorite a template
// @Description Adds the template to the caller's favorites and bumps its favorite count. Favoriting twice fails.
// @Tags favorites
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} handlers.ApiResponse "Template favorited"
// @Failure 400 {object} handlers.ApiResponse "Template missing or already favorited"
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/templates/{id}/favorite [post]
func NewFavoriteTemplateHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid template id"})
			return
		}

		if err := svc.Favorite(r.Context(), userEmail, id); err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound),
				errors.Is(err, services.ErrAlreadyFavorited),
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
		json.NewEncoder(w).Encode(ApiResponse{Success: true, Message: "Template favorited"})
	}
}
