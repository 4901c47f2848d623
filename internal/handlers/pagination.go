package handlers

import (
	"net/http"
	"strconv"

	"github.com/promptcraft/templates/internal/models"
)

// parsePageRequest reads page, size, sortBy and sortDir query
// parameters, falling back to the documented defaults (page=0,
// size=20, sortBy=createdAt, sortDir=DESC).
func parsePageRequest(r *http.Request) models.PageRequest {
	page := models.PageRequest{
		Page:    models.DefaultPage,
		Size:    models.DefaultPageSize,
		SortBy:  r.URL.Query().Get("sortBy"),
		SortDir: r.URL.Query().Get("sortDir"),
	}

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		page.Size = v
	}

	return page.Normalize()
}
