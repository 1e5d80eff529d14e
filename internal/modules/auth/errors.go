package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already in use")
	ErrUsernameExists     = errors.New("username already taken")
	ErrContactExists      = errors.New("contact number already in use")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("no user is associated with this email address")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidGender      = errors.New("invalid gender value")
)
