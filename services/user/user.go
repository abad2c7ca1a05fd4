package user

import (
	"context"
	"fmt"
	"time"

	userRepo "strikersyard/database/repository/user"
	"strikersyard/models"
	"strikersyard/services/notification"
	"strikersyard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenDuration is how long an issued access token stays valid.
const TokenDuration = 24 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.Service
}

// RequestOTP generates a login code for the phone number and hands it to the
// notifier.
func (s *DefaultUserService) RequestOTP(ctx context.Context, phone string) error {
	code, err := utils.GenerateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := utils.StoreLoginOTP(ctx, phone, code); err != nil {
		return err
	}
	if err := s.Notifier.SendOTP(ctx, phone, code); err != nil {
		return err
	}
	return nil
}

// VerifyOTP checks the code, upserts the account, and issues a signed token.
// The token hash is cached in Redis with a DB fallback for the auth
// middleware.
func (s *DefaultUserService) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResult, error) {
	if err := utils.VerifyLoginOTP(ctx, phone, code); err != nil {
		return nil, err
	}

	usr, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	isFirstLogin := usr == nil
	if isFirstLogin {
		now := time.Now()
		usr = &models.User{
			ID:          uuid.New().String(),
			PhoneNumber: phone,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Repo.Create(ctx, usr); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(usr.ID, usr.PhoneNumber, TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(ctx, usr.ID, tokenHash); err != nil {
		return nil, err
	}
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token hash",
			zap.String("userID", usr.ID), zap.Error(err))
	}

	return &models.AuthResult{
		Token:        token,
		User:         *usr,
		IsFirstLogin: isFirstLogin,
	}, nil
}

// UpdateProfile sets the user's name and email.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error) {
	usr, err := s.Repo.UpdateProfile(ctx, userID, name, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return usr, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
