package auth

import (
	"context"
	"time"

	"homeserve/internal/domain"
)

// UserRepository lists only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByContact(ctx context.Context, contact string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

// ResetTokenRepository stores single-use password-reset tokens.
type ResetTokenRepository interface {
	Create(ctx context.Context, t *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, id int64) error
	DeleteForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type jwtService interface {
	GenerateToken(userID int64, username string) (string, error)
}
