package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"gameworth/internal/models"
	"gameworth/internal/repositories"
	"gameworth/internal/services"
)

func TestAuthService_Signup_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository calls expected for validation failures
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
		nil,
	)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{name: "username too short", username: "ab", email: "x@y.com", password: "secret1", wantErr: services.ErrUsernameLength},
		{name: "username too long", username: strings.Repeat("a", 21), email: "x@y.com", password: "secret1", wantErr: services.ErrUsernameLength},
		{name: "username bad charset", username: "john doe", email: "x@y.com", password: "secret1", wantErr: services.ErrUsernameCharset},
		{name: "username dash rejected", username: "john-doe", email: "x@y.com", password: "secret1", wantErr: services.ErrUsernameCharset},
		{name: "email no at", username: "john", email: "not-an-email", password: "secret1", wantErr: services.ErrInvalidEmail},
		{name: "email no tld", username: "john", email: "john@host", password: "secret1", wantErr: services.ErrInvalidEmail},
		{name: "password too short", username: "john", email: "x@y.com", password: "12345", wantErr: services.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Signup(context.Background(), tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_Signup_BoundaryLengths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockTokenGenerator(ctrl), nil)

	for _, username := range []string{"abc", strings.Repeat("a", 20)} {
		t.Run(username, func(t *testing.T) {
			mockReader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
			mockReader.EXPECT().GetByEmail(gomock.Any(), "x@y.com").Return(nil, nil)
			mockWriter.EXPECT().
				Create(gomock.Any(), username, "x@y.com", gomock.Any()).
				Return(&models.UserDB{ID: 1, Username: username, Email: "x@y.com"}, nil)

			user, err := svc.Signup(context.Background(), username, "x@y.com", "secret1")
			assert.NoError(t, err)
			assert.Equal(t, username, user.Username)
		})
	}
}

func TestAuthService_Signup_Duplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockTokenGenerator(ctrl), nil)
	ctx := context.Background()

	t.Run("username taken", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{ID: 1, Username: "alice"}, nil)

		_, err := svc.Signup(ctx, "alice", "new@y.com", "secret1")
		assert.ErrorIs(t, err, services.ErrUsernameExists)
	})

	t.Run("email taken", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "newuser").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@y.com").
			Return(&models.UserDB{ID: 1, Email: "alice@y.com"}, nil)

		_, err := svc.Signup(ctx, "newuser", "alice@y.com", "secret1")
		assert.ErrorIs(t, err, services.ErrEmailExists)
	})

	t.Run("username race on insert", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "racer").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "racer@y.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), "racer", "racer@y.com", gomock.Any()).
			Return(nil, repositories.ErrDuplicateUsername)

		_, err := svc.Signup(ctx, "racer", "racer@y.com", "secret1")
		assert.ErrorIs(t, err, services.ErrUsernameExists)
	})

	t.Run("email race on insert", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "racer2").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "racer2@y.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), "racer2", "racer2@y.com", gomock.Any()).
			Return(nil, repositories.ErrDuplicateEmail)

		_, err := svc.Signup(ctx, "racer2", "racer2@y.com", "secret1")
		assert.ErrorIs(t, err, services.ErrEmailExists)
	})
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockTokenGenerator(ctrl), nil)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "hasher").Return(nil, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "h@y.com").Return(nil, nil)
	mockWriter.EXPECT().
		Create(gomock.Any(), "hasher", "h@y.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
			assert.NotEqual(t, "secret1", passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret1")))
			return &models.UserDB{ID: 5, Username: username, Email: email}, nil
		})

	_, err := svc.Signup(context.Background(), "hasher", "h@y.com", "secret1")
	assert.NoError(t, err)
}

func TestAuthService_Signup_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockEvents := services.NewMockKafkaWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockTokenGenerator(ctrl), mockEvents)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "emitter").Return(nil, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "e@y.com").Return(nil, nil)
	mockWriter.EXPECT().Create(gomock.Any(), "emitter", "e@y.com", gomock.Any()).
		Return(&models.UserDB{ID: 9, Username: "emitter", Email: "e@y.com"}, nil)
	mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.Signup(context.Background(), "emitter", "e@y.com", "secret1")
	assert.NoError(t, err)
}

func TestAuthService_Signup_NoEventOnValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockKafkaWriter(ctrl)
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
		mockEvents,
	)

	// no WriteMessages expectation: any publish would fail the test
	_, err := svc.Signup(context.Background(), "ab", "x@y.com", "secret1")
	assert.ErrorIs(t, err, services.ErrUsernameLength)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, nil)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	stored := &models.UserDB{ID: 42, Username: "alice", PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), int64(42)).Return("token123", nil)

		user, token, err := svc.Login(ctx, "alice", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, int64(42), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)

		_, _, err := svc.Login(ctx, "alice", "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "secret1")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("identical error for both failure modes", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		_, _, errWrongPass := svc.Login(ctx, "alice", "nope")

		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
		_, _, errNoUser := svc.Login(ctx, "ghost", "nope")

		assert.Equal(t, errWrongPass, errNoUser)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		_, _, err := svc.Login(ctx, "alice", "secret1")
		assert.EqualError(t, err, "db error")
	})
}
