// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the kv-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// application from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the kv-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the server. On success the bearer token from
	// the Authorization response header is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) error

	// Get fetches the raw value stored under key. A miss is reported as a
	// wrapped [ErrNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Upsert stores value under key, creating or overwriting the entry, and
	// returns the persisted entry with server-assigned timestamps.
	Upsert(ctx context.Context, key string, value string) (models.Entry, error)

	// Update replaces the value of an existing key. An absent key is
	// reported as a wrapped [ErrNotFound].
	Update(ctx context.Context, key string, value string) (models.Entry, error)

	// Remove deletes the entry stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists stored keys; a non-empty prefix narrows the listing.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Version fetches the server's application version string.
	Version(ctx context.Context) (string, error)
}
