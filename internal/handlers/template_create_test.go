package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

func TestCreateTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTemplateCreator(ctrl)
	handler := authed(NewCreateTemplateHandler(mockSvc), "alice@example.com")

	ownerID := int64(5)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created with defaults",
			inputBody: TemplateRequest{
				Title:   "Code review",
				Content: "Review this code: {code}",
			},
			mockSetup: func() {
				// Omitted forDevs defaults to false, omitted isPublic to true.
				mockSvc.EXPECT().
					Create(gomock.Any(),
						models.TemplateFields{Title: "Code review", Content: "Review this code: {code}", IsPublic: true},
						"alice@example.com").
					Return(&models.TemplateWithViewer{
						TemplateDB: models.TemplateDB{ID: 1, Title: "Code review", Category: models.CategoryOther, IsPublic: true, UserID: &ownerID},
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing title",
			inputBody:    TemplateRequest{Content: "C"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown category",
			inputBody:    TemplateRequest{Title: "T", Content: "C", Category: "COOKING"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "owner vanished",
			inputBody: TemplateRequest{Title: "T", Content: "C"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), gomock.Any(), "alice@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body bytes.Buffer
			switch v := tt.inputBody.(type) {
			case string:
				body.WriteString(v)
			default:
				json.NewEncoder(&body).Encode(v)
			}

			r := httptest.NewRequest(http.MethodPost, "/api/templates", &body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
