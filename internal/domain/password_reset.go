package domain

import "time"

// PasswordResetToken is a single-use token row with its own expiry. Tokens
// are deleted on use; expired rows are purged by cmd/cleanup and the
// in-process scheduler.
type PasswordResetToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-" gorm:"size:100;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
