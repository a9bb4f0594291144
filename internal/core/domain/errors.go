package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrListingNotFound    = errors.New("listing not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrSelfAction         = errors.New("operation not permitted on own account")
)
