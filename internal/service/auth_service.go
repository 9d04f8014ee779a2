package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/mailer"
	"coursehub/internal/models"
	"coursehub/internal/repository"
	"coursehub/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles signup, login and password recovery.
type AuthService struct {
	userRepo      repository.UserRepository
	jwtManager    auth.TokenManager
	resetTokens   auth.ResetTokenGenerator
	notifier      MailNotifier
	frontendURL   string
	resetTokenTTL time.Duration
	now           func() time.Time
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo      repository.UserRepository
	JWTManager    auth.TokenManager
	ResetTokens   auth.ResetTokenGenerator
	Notifier      MailNotifier
	FrontendURL   string
	ResetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:      cfg.UserRepo,
		jwtManager:    cfg.JWTManager,
		resetTokens:   cfg.ResetTokens,
		notifier:      cfg.Notifier,
		frontendURL:   strings.TrimRight(cfg.FrontendURL, "/"),
		resetTokenTTL: cfg.ResetTokenTTL,
		now:           time.Now,
	}
}

// Signup creates a student or instructor account.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if req.AccountType != models.RoleStudent && req.AccountType != models.RoleInstructor {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashedPassword,
		Role:      req.AccountType,
		ImageURL:  DefaultAvatarURL(req.FirstName, req.LastName),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and issues a token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: s.jwtManager.TTLSeconds(),
		User:      user,
	}, nil
}

// ForgotPassword mails a reset link. Unknown addresses succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, hash, err := s.resetTokens.Generate()
	if err != nil {
		return err
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, hash, s.now().Add(s.resetTokenTTL)); err != nil {
		return err
	}

	link := s.frontendURL + "/update-password/" + token
	s.notifier.Notify(mailer.PasswordReset(user.Email, user.FirstName, link, s.resetTokenTTL))
	return nil
}

// ResetPassword replaces the password of the account holding token.
func (s *AuthService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByResetTokenHash(ctx, s.resetTokens.Hash(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}

	if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
		return apperrors.ErrResetTokenExpired
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.SetPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	s.notifier.Notify(mailer.PasswordChanged(user.Email, user.FirstName))
	return nil
}

// ChangePassword replaces the password of a signed-in user.
func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(req.OldPassword, user.Password); err != nil {
		return apperrors.Validation("old password is incorrect")
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.SetPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	s.notifier.Notify(mailer.PasswordChanged(user.Email, user.FirstName))
	return nil
}

// DefaultAvatarURL is the generated initials avatar new accounts start with.
func DefaultAvatarURL(firstName, lastName string) string {
	return "https://api.dicebear.com/5.x/initials/svg?seed=" + url.QueryEscape(strings.TrimSpace(firstName+" "+lastName))
}
