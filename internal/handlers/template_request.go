package handlers

import (
	"github.com/go-playground/validator"

	"github.com/promptcraft/templates/internal/models"
)

var validate = validator.New()

// TemplateRequest is the JSON body for creating or updating a template.
// Updates are full replacement: omitted optional fields fall back to
// their defaults (description cleared, forDevs=false, isPublic=true).
// swagger:model TemplateRequest
type TemplateRequest struct {
	// Title
	// required: true
	Title string `json:"title" validate:"required,max=200"`

	// Template content
	// required: true
	Content string `json:"content" validate:"required"`

	// Optional description
	Description *string `json:"description" validate:"omitempty,max=500"`

	// Category, defaults to OTHER
	Category string `json:"category" validate:"omitempty,oneof=DEVELOPMENT GENERAL BUSINESS CREATIVE EDUCATION LANGUAGE ENTERTAINMENT PRODUCTIVITY OTHER"`

	// Developer-oriented flag, defaults to false
	ForDevs *bool `json:"forDevs"`

	// Visibility flag, defaults to true
	IsPublic *bool `json:"isPublic"`
}

// fields converts the request into template fields with defaults applied.
func (req TemplateRequest) fields() models.TemplateFields {
	fields := models.TemplateFields{
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Category:    req.Category,
		ForDevs:     false,
		IsPublic:    true,
	}
	if req.ForDevs != nil {
		fields.ForDevs = *req.ForDevs
	}
	if req.IsPublic != nil {
		fields.IsPublic = *req.IsPublic
	}
	return fields
}
