package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUsernameTaken       = errors.New("username already in use")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("password incorrect")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
