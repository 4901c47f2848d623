package models

import (
	"time"
)

// Template categories (closed set, stored as VARCHAR).
const (
	CategoryDevelopment   = "DEVELOPMENT"
	CategoryGeneral       = "GENERAL"
	CategoryBusiness      = "BUSINESS"
	CategoryCreative      = "CREATIVE"
	CategoryEducation     = "EDUCATION"
	CategoryLanguage      = "LANGUAGE"
	CategoryEntertainment = "ENTERTAINMENT"
	CategoryProductivity  = "PRODUCTIVITY"
	CategoryOther         = "OTHER"
)

// Categories lists every valid template category.
var Categories = []string{
	CategoryDevelopment,
	CategoryGeneral,
	CategoryBusiness,
	CategoryCreative,
	CategoryEducation,
	CategoryLanguage,
	CategoryEntertainment,
	CategoryProductivity,
	CategoryOther,
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TemplateDB represents a template record in the database
type TemplateDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	Title         string    `json:"title" db:"title"`                   // Required, max 200 chars
	Content       string    `json:"content" db:"content"`               // Required, unbounded text
	Description   *string   `json:"description" db:"description"`       // Optional, max 500 chars
	Category      string    `json:"category" db:"category"`             // One of Categories
	ForDevs       bool      `json:"forDevs" db:"for_devs"`              // Developer-oriented flag
	IsPublic      bool      `json:"isPublic" db:"is_public"`            // Visible in public listings
	IsOfficial    bool      `json:"isOfficial" db:"is_official"`        // System-curated, only ever true for ownerless templates
	UsageCount    int       `json:"usageCount" db:"usage_count"`        // Never negative
	FavoriteCount int       `json:"favoriteCount" db:"favorite_count"`  // Matches count of favorite rows
	UserID        *int64    `json:"userId" db:"user_id"`                // Owner, nil for official templates
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`          // Creation timestamp
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`          // Last update timestamp
}

// TemplateWithViewer is a template row annotated for a specific viewer.
type TemplateWithViewer struct {
	TemplateDB
	IsFavorited  bool    `json:"isFavorited" db:"is_favorited"`    // True if the viewer favorited this template
	CreatorEmail *string `json:"creatorEmail" db:"creator_email"`  // Owner email, nil for official templates
}

// TemplateFields carries the mutable fields of a template for create/update.
// Update applies them as full replacement: omitted optional fields clear.
type TemplateFields struct {
	Title       string
	Content     string
	Description *string
	Category    string
	ForDevs     bool
	IsPublic    bool
}
