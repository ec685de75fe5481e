package service

import (
	"context"

	"github.com/MKhiriev/go-kv-keeper/models"
)

type KeyValueService interface {
	Upsert(ctx context.Context, key string, value string) (models.Entry, error)
	Read(ctx context.Context, key string) (models.Entry, error)
	Update(ctx context.Context, key string, value string) (models.Entry, error)
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
