package handlers

// ApiResponse is the generic success-flag envelope for acks and
// structured failures.
// swagger:model ApiResponse
type ApiResponse struct {
	// Operation outcome
	Success bool `json:"success"`
	// Human-readable message
	Message string `json:"message"`
}

// JwtResponse is the identity and token pair returned by signup and login
// swagger:model JwtResponse
type JwtResponse struct {
	// Short-lived access token presented on authenticated calls
	AccessToken string `json:"accessToken"`
	// Longer-lived refresh token (no endpoint consumes it yet)
	RefreshToken string `json:"refreshToken"`
	// Always "Bearer"
	TokenType string `json:"tokenType"`
	// User id
	UserID int64 `json:"userId"`
	// User email
	Email string `json:"email"`
	// USER / ADMIN / ENTERPRISE
	Role string `json:"role"`
	// FREE / PRO / ENTERPRISE
	SubscriptionTier string `json:"subscriptionTier"`
}
