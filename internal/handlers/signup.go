package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Register(ctx context.Context, email, password string, firstName, lastName *string) (*services.AuthResult, error)
}

// SignupRequest is the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	Password string `json:"password" validate:"required,min=6"`

	// Optional first name
	FirstName *string `json:"firstName"`

	// Optional last name
	LastName *string `json:"lastName"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Creates a new user account with USER role and FREE tier and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.JwtResponse "Identity and token pair"
// @Failure 400 {object} handlers.ApiResponse "Duplicate email or validation failure"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: err.Error()})
			return
		}

		result, err := svc.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
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
