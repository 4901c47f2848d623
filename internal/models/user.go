package models

import (
	"time"
)

// User roles.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleEnterprise = "ENTERPRISE"
)

// Subscription tiers.
const (
	TierFree       = "FREE"
	TierPro        = "PRO"
	TierEnterprise = "ENTERPRISE"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                    int64      `json:"id" db:"id"`                                           // Primary key
	Email                 string     `json:"email" db:"email"`                                     // Unique email, immutable after signup
	PasswordHash          string     `json:"-" db:"password_hash"`                                 // Bcrypt hash, never serialized
	FirstName             *string    `json:"first_name" db:"first_name"`                           // Optional first name
	LastName              *string    `json:"last_name" db:"last_name"`                             // Optional last name
	Role                  string     `json:"role" db:"role"`                                       // USER / ADMIN / ENTERPRISE
	SubscriptionTier      string     `json:"subscription_tier" db:"subscription_tier"`             // FREE / PRO / ENTERPRISE
	Active                bool       `json:"active" db:"active"`                                   // Deactivation flag, never hard-deleted
	EmailVerified         bool       `json:"email_verified" db:"email_verified"`                   // Email verification flag
	SubscriptionStartDate *time.Time `json:"subscription_start_date" db:"subscription_start_date"` // Optional subscription window start
	SubscriptionEndDate   *time.Time `json:"subscription_end_date" db:"subscription_end_date"`     // Optional subscription window end
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`                           // Creation timestamp
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`                           // Last update timestamp
}
