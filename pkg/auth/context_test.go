package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-token-service/pkg/auth"
)

type testPrincipal struct {
	id string
}

func (p testPrincipal) Type() auth.PrincipalType {
	return "test"
}

func (p testPrincipal) ID() *string {
	return &p.id
}

func TestGetPrincipal_Authenticated(t *testing.T) {
	ctx := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{
		AuthPrincipal: &testPrincipal{id: "42"},
	})

	ok, err := auth.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	principal, err := auth.GetPrincipal[testPrincipal](ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", principal.id)
}

func TestGetPrincipal_Anonymous(t *testing.T) {
	ctx := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{})

	ok, err := auth.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = auth.GetPrincipal[testPrincipal](ctx)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestIsAuthenticated_MissingAuthentication(t *testing.T) {
	_, err := auth.IsAuthenticated(context.Background())
	assert.Error(t, err)

	_, err = auth.GetPrincipal[testPrincipal](context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
