package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/pkg/crypto"
	"lizexpress.backend/pkg/jwt"
	"lizexpress.backend/pkg/logger"
)

// ResetTokenStore holds one-time password reset tokens between request
// and redemption.
type ResetTokenStore interface {
	Put(ctx context.Context, token, userID string, expiration time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

const resetTokenTTL = 15 * time.Minute

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	jwtService  *jwt.JWTService
	resetTokens ResetTokenStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, resetTokens ResetTokenStore) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, jwtService: jwtService, resetTokens: resetTokens}
}

// Register creates a new account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.NewError("email already registered", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		Status:       entities.UserStatusActive,
		FullName:     null.NewString(input.FullName, input.FullName != ""),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", zap.String("user_id", user.ID.String()))
	return u.issueTokens(user)
}

// Login authenticates a user with email and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status == entities.UserStatusFlagged {
		return nil, domainerrors.Forbidden("account is flagged, contact support")
	}

	return u.issueTokens(user)
}

// Refresh trades a valid refresh token for a new token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status == entities.UserStatusFlagged {
		return nil, domainerrors.Forbidden("account is flagged, contact support")
	}

	return u.issueTokens(user)
}

// RequestPasswordReset issues a one-time reset token for the account.
// The caller never learns whether the email exists; token delivery is
// handled out of band by the mail pipeline reading the log stream.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Info(ctx, "password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return err
	}
	if err := u.resetTokens.Put(ctx, token, user.ID.String(), resetTokenTTL); err != nil {
		return err
	}

	logger.Info(ctx, "password reset token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("reset_token", token))
	return nil
}

// ResetPassword redeems a reset token and sets the new password. The
// token is burned on success.
func (u *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return domainerrors.BadRequest("password must be at least 8 characters")
	}

	idStr, err := u.resetTokens.Get(ctx, token)
	if err != nil {
		return domainerrors.Unauthorized("reset token is invalid or expired")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return domainerrors.Unauthorized("reset token is invalid or expired")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := u.resetTokens.Delete(ctx, token); err != nil {
		logger.Warn(ctx, "failed to burn redeemed reset token", zap.Error(err))
	}

	logger.Info(ctx, "password reset", zap.String("user_id", user.ID.String()))
	return nil
}

// Me returns the authenticated user's account
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

func (u *AuthUsecase) issueTokens(user *entities.User) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
