package properties_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-token-service/pkg/properties"
)

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataease:\n  login_timeout: 60\n  link_secret: from-file\n"), 0o600))
	t.Setenv("DATAEASE_LOGIN_TIMEOUT", "15")

	p, err := properties.Load(properties.WithFile(path), properties.WithEnvNamespace("dataease"))
	require.NoError(t, err)

	timeout, err := p.Int("dataease.login_timeout", 480)
	require.NoError(t, err)
	assert.Equal(t, 15, timeout)
	assert.Equal(t, "from-file", p.String("dataease.link_secret", ""))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := properties.Load(properties.WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestProvider_Int(t *testing.T) {
	t.Parallel()
	p := properties.NewMapProvider(map[string]any{
		"dataease.login_timeout": "30",
		"dataease.number":        45,
		"dataease.broken":        "half an hour",
	})

	tests := []struct {
		key         string
		expected    int
		expectedErr error
	}{
		{"dataease.login_timeout", 30, nil},
		{"dataease.number", 45, nil},
		{"dataease.absent", 480, nil},
		{"dataease.broken", 0, properties.ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()
			value, err := p.Int(tc.key, 480)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestProvider_StringAndExists(t *testing.T) {
	t.Parallel()
	p := properties.NewMapProvider(map[string]any{"dataease.link_secret": "s3cr3t"})

	assert.True(t, p.Exists("dataease.link_secret"))
	assert.False(t, p.Exists("dataease.login_timeout"))
	assert.Equal(t, "s3cr3t", p.String("dataease.link_secret", ""))
	assert.Equal(t, "fallback", p.String("dataease.absent", "fallback"))
}
