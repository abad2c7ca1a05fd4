package user

import (
	"context"

	"strikersyard/models"
)

// UserService handles phone-first identity: OTP issuance, OTP login, and
// profile updates.
type UserService interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResult, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
