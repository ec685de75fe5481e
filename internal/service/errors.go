package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
