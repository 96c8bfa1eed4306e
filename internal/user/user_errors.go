package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already registered")
	ErrInvalidUserID    = errors.New("invalid user id")
)
