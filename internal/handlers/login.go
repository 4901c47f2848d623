package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/promptcraft/templates/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// LoginRequest is the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates a user and returns an access/refresh token pair. Every failure maps to 401 regardless of cause.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.JwtResponse "Identity and token pair"
// @Failure 401 {object} handlers.ApiResponse "Invalid email or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid email or password"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid email or password"})
			return
		}

		result, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// Every login failure, including storage errors, maps to
			// 401 to avoid leaking which part of the check failed.
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid email or password"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(JwtResponse{
			AccessToken:      result.AccessToken,
			RefreshToken:     result.RefreshToken,
			TokenType:        "Bearer",
			UserID:           result.UserID,
			Email:            result.Email,
			Role:             result.Role,
			SubscriptionTier: result.SubscriptionTier,
		})
	}
}
