package models

import (
	"time"
)

// FavoriteDB represents a favorite record in the database.
// At most one row exists per (user, template) pair, enforced by a
// UNIQUE constraint at the storage layer.
type FavoriteDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`         // Favoriting user
	TemplateID int64     `json:"template_id" db:"template_id"` // Favorited template
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // When the favorite was created
}

// FavoritedTemplate is a template joined with the favorite that references it.
type FavoritedTemplate struct {
	TemplateDB
	FavoritedAt time.Time `json:"favoritedAt" db:"favorited_at"` // When the viewer favorited it
}
