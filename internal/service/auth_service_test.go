package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
	"coursehub/pkg/auth"
	authmocks "coursehub/pkg/auth/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T, m *serviceMocks) (*AuthService, *authmocks.MockTokenManager) {
	jwt := authmocks.NewMockTokenManager(gomock.NewController(t))
	svc := NewAuthService(AuthServiceConfig{
		UserRepo:      m.users,
		JWTManager:    jwt,
		ResetTokens:   auth.NewResetTokenGenerator(),
		Notifier:      m.notifier,
		FrontendURL:   "http://localhost:3000/",
		ResetTokenTTL: 5 * time.Minute,
	})
	return svc, jwt
}

func TestAuthService_Signup(t *testing.T) {
	req := &models.SignupRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "Ada@Example.com ",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccountType:     models.RoleStudent,
	}

	t.Run("creates a student with hashed password and default avatar", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		m.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				assert.Equal(t, "ada@example.com", user.Email)
				assert.Equal(t, models.RoleStudent, user.Role)
				assert.NotEqual(t, req.Password, user.Password)
				assert.NoError(t, auth.CheckPassword(req.Password, user.Password))
				assert.Contains(t, user.ImageURL, "seed=Ada+Lovelace")
				return nil
			})

		user, err := svc.Signup(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		bad := *req
		bad.ConfirmPassword = "different"

		user, err := svc.Signup(context.Background(), &bad)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	})

	t.Run("rejects self-registered admins", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		bad := *req
		bad.AccountType = models.RoleAdmin

		_, err := svc.Signup(context.Background(), &bad)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)

		_, err := svc.Signup(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", Password: hash, Role: models.RoleInstructor}

	t.Run("issues a token carrying id and role", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, jwt := newTestAuthService(t, m)

		m.users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		jwt.EXPECT().GenerateToken(user.ID.Hex(), models.RoleInstructor).Return("token", nil)
		jwt.EXPECT().TTLSeconds().Return(int64(86400))

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ADA@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "token", resp.Token)
		assert.Equal(t, int64(86400), resp.ExpiresIn)
		assert.Equal(t, user, resp.User)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		m.users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		m.users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		_, err1 := svc.Login(context.Background(), &models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
		_, err2 := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

		assert.ErrorIs(t, err1, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, err2, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("stores the token hash and mails the raw token", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", FirstName: "Ada"}
		m.users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		var storedHash string
		m.users.EXPECT().
			SetResetToken(gomock.Any(), user.ID, gomock.Any(), now.Add(5*time.Minute)).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, hash string, expiry time.Time) error {
				storedHash = hash
				return nil
			})

		err := svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ada@example.com"})
		require.NoError(t, err)

		sent := m.notifier.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "ada@example.com", sent[0].To)

		idx := strings.Index(sent[0].Body, "http://localhost:3000/update-password/")
		require.GreaterOrEqual(t, idx, 0)
		token := sent[0].Body[idx+len("http://localhost:3000/update-password/"):][:64]
		assert.Equal(t, auth.NewResetTokenGenerator().Hash(token), storedHash)
	})

	t.Run("unknown email succeeds without mail", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		m.users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		err := svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "nobody@example.com"})

		assert.NoError(t, err)
		assert.Empty(t, m.notifier.sent())
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	tokens := auth.NewResetTokenGenerator()
	token, hash, err := tokens.Generate()
	require.NoError(t, err)
	req := &models.ResetPasswordRequest{Password: "newsecret123", ConfirmPassword: "newsecret123"}

	t.Run("replaces the password before expiry", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		expiry := time.Now().Add(time.Minute)
		user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", ResetTokenExpiry: &expiry}

		m.users.EXPECT().FindByResetTokenHash(gomock.Any(), hash).Return(user, nil)
		m.users.EXPECT().
			SetPassword(gomock.Any(), user.ID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
				assert.NoError(t, auth.CheckPassword("newsecret123", passwordHash))
				return nil
			})

		require.NoError(t, svc.ResetPassword(context.Background(), token, req))
		assert.Len(t, m.notifier.sent(), 1)
	})

	t.Run("expired token", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		expiry := time.Now().Add(-time.Minute)
		user := &models.User{ID: primitive.NewObjectID(), ResetTokenExpiry: &expiry}

		m.users.EXPECT().FindByResetTokenHash(gomock.Any(), hash).Return(user, nil)

		err := svc.ResetPassword(context.Background(), token, req)

		assert.ErrorIs(t, err, apperrors.ErrResetTokenExpired)
	})

	t.Run("unknown token", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)

		m.users.EXPECT().FindByResetTokenHash(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

		err := svc.ResetPassword(context.Background(), "bogus", req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("checks the old password", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		user := &models.User{ID: primitive.NewObjectID(), Password: hash}

		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		err := svc.ChangePassword(context.Background(), user.ID, &models.ChangePasswordRequest{
			OldPassword: "wrong", NewPassword: "newsecret123", ConfirmPassword: "newsecret123",
		})

		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("stores the new hash and notifies", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", Password: hash}

		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.users.EXPECT().SetPassword(gomock.Any(), user.ID, gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), user.ID, &models.ChangePasswordRequest{
			OldPassword: "secret123", NewPassword: "newsecret123", ConfirmPassword: "newsecret123",
		})

		require.NoError(t, err)
		assert.Len(t, m.notifier.sent(), 1)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		m := newServiceMocks(t)
		svc, _ := newTestAuthService(t, m)
		boom := errors.New("boom")

		m.users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, boom)

		err := svc.ChangePassword(context.Background(), primitive.NewObjectID(), &models.ChangePasswordRequest{
			OldPassword: "secret123", NewPassword: "newsecret123", ConfirmPassword: "newsecret123",
		})

		assert.ErrorIs(t, err, boom)
	})
}
