package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/go-token-service/internal/token/infra/password"
)

func TestEncoder(t *testing.T) {
	t.Parallel()
	encoder := password.NewEncoder(bcrypt.MinCost)

	hash, err := encoder.HashPassword("s3cr3t")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cr3t", hash)

	assert.True(t, encoder.CompareHash(hash, "s3cr3t"))
	assert.False(t, encoder.CompareHash(hash, "other"))
	assert.False(t, encoder.CompareHash("not a hash", "s3cr3t"))
}

func TestEncoder_SaltsEveryHash(t *testing.T) {
	t.Parallel()
	encoder := password.NewEncoder(bcrypt.MinCost)

	first, err := encoder.HashPassword("s3cr3t")
	require.NoError(t, err)
	second, err := encoder.HashPassword("s3cr3t")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
