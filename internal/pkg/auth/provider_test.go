package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-token-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/go-token-service/pkg/auth"
)

type unknownToken struct{}

func (unknownToken) Type() pkgauth.PrincipalType { return "service" }

func TestProvider_Authenticate(t *testing.T) {
	t.Parallel()
	provider := auth.NewProvider()

	authentication, err := provider.Authenticate(context.Background(), auth.UserIDToken{ID: 42})
	require.NoError(t, err)
	require.True(t, authentication.IsAuthenticated())

	principal := *authentication.Principal()
	require.NotNil(t, principal.UserID)
	assert.Equal(t, int64(42), *principal.UserID)
	assert.Equal(t, auth.PrincipalTypeUser, principal.Type())
	assert.Equal(t, "42", *principal.ID())

	_, err = provider.Authenticate(context.Background(), unknownToken{})
	assert.Error(t, err)
}

func TestPrincipal_Anonymous(t *testing.T) {
	t.Parallel()
	assert.Nil(t, auth.Principal{}.ID())
	assert.Equal(t, pkgauth.PrincipalType("unknown"), auth.Principal{}.Type())
}
