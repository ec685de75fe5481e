package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("server is overloaded")
	ErrRequestTimeout      = errors.New("request timed out on server")
	ErrInternalServerError = errors.New("internal server error")
)
