package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationPasswordTooShort = errors.New("password is too short")
	ErrValidationPasswordMismatch = errors.New("password and confirmation do not match")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
