package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/promptcraft/templates/internal/jwt"
	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	savedUser := &models.UserDB{
		ID:               1,
		Email:            "alice@example.com",
		Role:             models.RoleUser,
		SubscriptionTier: models.TierFree,
	}

	tests := []struct {
		name         string
		email        string
		existingUser *models.UserDB
		readerErr    error
		savedUser    *models.UserDB
		writerErr    error
		wantErr      error
	}{
		{
			name:      "successful registration",
			email:     "alice@example.com",
			savedUser: savedUser,
		},
		{
			name:         "email already exists",
			email:        "bob@example.com",
			existingUser: &models.UserDB{ID: 2, Email: "bob@example.com"},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "concurrent signup hits unique constraint",
			email:     "dave@example.com",
			writerErr: &pgconn.PgError{Code: "23505"},
			wantErr:   services.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.email, gomock.Any(), gomock.Nil(), gomock.Nil()).
					Return(tt.savedUser, tt.writerErr)
			}

			if tt.savedUser != nil && tt.writerErr == nil {
				mockJWT.EXPECT().
					GeneratePair(gomock.Any(), tt.savedUser.Email, tt.savedUser.Role).
					Return(jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
			}

			result, err := svc.Register(context.Background(), tt.email, "pass123", nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", result.AccessToken)
				assert.Equal(t, "refresh", result.RefreshToken)
				assert.Equal(t, tt.savedUser.ID, result.UserID)
				assert.Equal(t, models.RoleUser, result.Role)
				assert.Equal(t, models.TierFree, result.SubscriptionTier)
			}
		})
	}
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret123"

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, email, passwordHash string, _, _ *string) (*models.UserDB, error) {
			assert.NotEqual(t, password, passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)))
			return &models.UserDB{ID: 1, Email: email, Role: models.RoleUser}, nil
		})
	mockJWT.EXPECT().
		GeneratePair(gomock.Any(), "alice@example.com", models.RoleUser).
		Return(jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	_, err := svc.Register(context.Background(), "alice@example.com", password, nil, nil)
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenPairGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	user := &models.UserDB{
		ID:               1,
		Email:            "alice@example.com",
		PasswordHash:     string(hashed),
		Role:             models.RoleUser,
		SubscriptionTier: models.TierFree,
	}

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      user,
		},
		{
			name:      "unknown email",
			email:     "ghost@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrong",
			user:      user,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			email:     "alice@example.com",
			loginPass: password,
			user:      user,
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					GeneratePair(gomock.Any(), tt.user.Email, tt.user.Role).
					Return(jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, tt.jwtErr)
			}

			result, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", result.AccessToken)
				assert.Equal(t, tt.user.Email, result.Email)
			}
		})
	}
}
