package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/services"
)

// UsageIncrementer defines the interface for the usage counting service.
type UsageIncrementer interface {
	IncrementUsage(ctx context.Context, id int64, viewerEmail string) error
}

// NewUseTemplateHandler returns an HTTP handler recording one use of a template.
// Callers do not need a token. When one is present the caller's daily and
// monthly usage stats are bumped as well.
// @Summary Record a template usage
// @Tags templates
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} handlers.ApiResponse "Usage count incremented"
// @Failure 400 {object} handlers.ApiResponse "Template missing"
// @Router /api/templates/{id}/use [post]
func NewUseTemplateHandler(svc UsageIncrementer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerEmail := middlewares.GetEmailFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Invalid template id"})
			return
		}

		if err := svc.IncrementUsage(r.Context(), id, viewerEmail); err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApiResponse{Success: false, Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ApiResponse{Success: true, Message: "Usage count incremented"})
	}
}
