package auth

import "errors"

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrTokenInvalid       = errors.New("invalid token")
)
