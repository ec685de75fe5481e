package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey      = errors.New("key is required")
	ErrKeyTooLong    = errors.New("key is too long")
	ErrInvalidKey    = errors.New("key contains forbidden characters")
	ErrEmptyValue    = errors.New("value is required")
	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
)
