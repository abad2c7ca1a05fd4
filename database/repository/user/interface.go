package userRepo

import (
	"context"

	"strikersyard/models"
)

// UserRepository persists phone-first user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	EnsureIndexes() error
}
