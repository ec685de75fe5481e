package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLoginFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoginCtxKey, "admin")

	login, ok := GetLoginFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", login)
}

func TestGetLoginFromContext_Missing(t *testing.T) {
	login, ok := GetLoginFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, login)
}

func TestGetLoginFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoginCtxKey, 42)

	login, ok := GetLoginFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, login)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "login", LoginCtxKey.String())
}
