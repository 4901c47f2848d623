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

// Profiler defines the interface for the profile service.
type Profiler interface {
	Profile(ctx context.Context, email string) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler exposing the authenticated user's profile.
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ApiResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/users/me [get]
func NewMeHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := middlewares.GetEmailFromContext(r.Context())

		user, err := svc.Profile(r.Context(), email)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
