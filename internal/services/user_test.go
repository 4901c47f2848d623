package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader)

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{ID: 1, Email: "alice@example.com"}, nil)

		user, err := svc.Profile(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, nil)

		_, err := svc.Profile(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(nil, errors.New("db error"))

		_, err := svc.Profile(context.Background(), "alice@example.com")
		assert.EqualError(t, err, "db error")
	})
}
