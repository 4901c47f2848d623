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

// FavoritesLister defines the interface for the favorites listing service.
type FavoritesLister interface {
	ListFavorites(ctx context.Context, userEmail string) ([]models.FavoritedTemplate, error)
}

// NewMeFavoritesHandler returns an HTTP handler listing the caller's favorites, newest first.
// @Summary List current user's favorites
// @Tags users
// @Produce json
// @Success 200 {array} models.FavoritedTemplate
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/users/me/favorites [get]
func NewMeFavoritesHandler(svc FavoritesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := middlewares.GetEmailFromContext(r.Context())

		favorites, err := svc.ListFavorites(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
			return
		}

		if favorites == nil {
			favorites = []models.FavoritedTemplate{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(favorites)
	}
}
