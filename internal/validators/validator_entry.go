package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-kv-keeper/models"
)

const (
	FieldKey      = "key"
	FieldValue    = "value"
	FieldLogin    = "login"
	FieldPassword = "password"
)

// MaxKeyLength caps the byte length of a key. Keys are addressed as a single
// URL path segment, so anything longer stops being a practical identifier.
const MaxKeyLength = 256

type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if err := validateKey(entry.Key); err != nil {
				return err
			}
		case FieldValue:
			if entry.Value == "" {
				return ErrEmptyValue
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *EntryValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if strings.TrimSpace(credentials.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// validateKey enforces that a key stays addressable as one URL path segment:
// non-empty, at most MaxKeyLength bytes, no slashes and no control runes.
func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	for _, r := range key {
		if r == '/' || unicode.IsControl(r) {
			return ErrInvalidKey
		}
	}
	return nil
}
