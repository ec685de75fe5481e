package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/utils"
	"github.com/MKhiriev/go-kv-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Get implements [ServerAdapter]. It GETs /api/{key} and returns the raw
// text/plain value.
func (h *httpServerAdapter) Get(ctx context.Context, key string) (string, error) {
	resp, err := h.authorizedRequest(ctx).
		SetPathParam("key", key).
		Get("/api/{key}")
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Upsert implements [ServerAdapter]. It POSTs the value to /api/{key} and
// decodes the persisted entry from the JSON response.
func (h *httpServerAdapter) Upsert(ctx context.Context, key string, value string) (models.Entry, error) {
	var saved models.Entry

	resp, err := h.authorizedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("key", key).
		SetBody(models.ValuePayload{Value: value}).
		SetResult(&saved).
		Post("/api/{key}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("upsert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return saved, nil
}

// Update implements [ServerAdapter]. It PUTs the value to /api/{key}; an
// absent key surfaces as a wrapped [ErrNotFound].
func (h *httpServerAdapter) Update(ctx context.Context, key string, value string) (models.Entry, error) {
	var updated models.Entry

	resp, err := h.authorizedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("key", key).
		SetBody(models.ValuePayload{Value: value}).
		SetResult(&updated).
		Put("/api/{key}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return updated, nil
}

// Remove implements [ServerAdapter]. It DELETEs /api/{key}.
func (h *httpServerAdapter) Remove(ctx context.Context, key string) error {
	resp, err := h.authorizedRequest(ctx).
		SetPathParam("key", key).
		Delete("/api/{key}")
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}

	return mapHTTPError(resp)
}

// Keys implements [ServerAdapter]. It GETs /api/ with an optional prefix
// query parameter and decodes the JSON listing.
func (h *httpServerAdapter) Keys(ctx context.Context, prefix string) ([]string, error) {
	var listing models.KeysResponse

	request := h.authorizedRequest(ctx).SetResult(&listing)
	if prefix != "" {
		request.SetQueryParam("prefix", prefix)
	}

	resp, err := request.Get("/api/")
	if err != nil {
		return nil, fmt.Errorf("keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return listing.Keys, nil
}

// Version implements [ServerAdapter]. It GETs /version and returns the
// plain-text version string.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// authorizedRequest prepares a request carrying the stored bearer token.
// Requests sent before a login simply omit the header; servers with
// authentication disabled accept them as is.
func (h *httpServerAdapter) authorizedRequest(ctx context.Context) *resty.Request {
	request := h.client.R().SetContext(ctx)
	if h.token != "" {
		request.SetHeader("Authorization", "Bearer "+h.token)
	}
	return request
}
