package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/utils"
	"github.com/MKhiriev/go-kv-keeper/internal/validators"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// authService is the concrete implementation of AuthService.
// The service knows a single account configured at startup; credentials are
// checked against a bcrypt hash and successful logins are answered with a
// signed HMAC-SHA256 JWT.
type authService struct {
	// login is the account name configured on the server.
	login string

	// passwordHash is the bcrypt hash the plaintext password from the login
	// request is compared against.
	passwordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// validator checks inbound credentials before any comparison work.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the account and
// token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		login:         cfg.Login,
		passwordHash:  cfg.PasswordHash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validators.NewEntryValidator(),
		logger:        logger,
	}
}

// Login verifies the supplied credentials and issues a signed JWT.
//
// Returns:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongCredentials if the login does not match the configured account
//     or the password does not match the bcrypt hash.
//   - A wrapped error if token signing fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Msg("invalid credentials provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.login)) != 1 {
		log.Warn().Str("login", credentials.Login).Msg("login attempt for unknown account")
		return models.Token{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(credentials.Password)); err != nil {
		log.Warn().Str("login", credentials.Login).Msg("login attempt with wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, credentials.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// ParseToken validates tokenString (signature, issuer, expiry) and returns
// the parsed token with the Login cache populated.
//
// An expired token is reported as ErrTokenIsExpired; any other validation
// failure is returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("error validating token")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("error validating token: %w", err)
	}

	return token, nil
}
