package errors

import "errors"

var (
	ErrInvalidUsername    = errors.New("username must be 1-50 characters")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUserConflict       = errors.New("a user with this username or email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
