package tokenctl_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/tokenctl"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := tokenctl.NewApp(&out).Run(append([]string{"tokenctl"}, args...))
	return strings.TrimSpace(out.String()), err
}

func TestSessionTokenCommands(t *testing.T) {
	token, err := run(t, "sign", "--username", "admin", "--user-id", "1", "--secret", "hash")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	out, err := run(t, "verify", "--token", token, "--username", "admin", "--user-id", "1", "--secret", "hash")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = run(t, "verify", "--token", token, "--username", "admin", "--user-id", "1", "--secret", "other")
	assert.ErrorIs(t, err, codec.ErrVerificationFailed)

	out, err = run(t, "inspect", "--token", token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"admin","userId":1}`, out)
}

func TestSign_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := run(t, "sign", "--username", "admin", "--user-id", "1", "--secret", "hash", "--timeout-minutes", "0")
	assert.ErrorIs(t, err, codec.ErrSigningFailed)
}

func TestInspect_MalformedToken(t *testing.T) {
	_, err := run(t, "inspect", "--token", "not-a-token")
	assert.ErrorIs(t, err, codec.ErrMalformedToken)
}

func TestLinkTokenCommands(t *testing.T) {
	anonymous, err := run(t, "sign-link", "--resource-id", "doc123", "--secret", "link")
	require.NoError(t, err)
	bound, err := run(t, "sign-link", "--resource-id", "doc123", "--user-id", "42", "--secret", "link")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"anonymous link", []string{"--token", anonymous, "--resource-id", "doc123"}, "true"},
		{"other resource", []string{"--token", anonymous, "--resource-id", "doc999"}, "false"},
		{"bound link", []string{"--token", bound, "--resource-id", "doc123", "--user-id", "42"}, "true"},
		{"bound link without user", []string{"--token", bound, "--resource-id", "doc123"}, "false"},
		{"bound link other user", []string{"--token", bound, "--resource-id", "doc123", "--user-id", "7"}, "false"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append(append([]string{"verify-link"}, tc.args...), "--secret", "link")...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	out, err := run(t, "verify-link", "--token", anonymous, "--resource-id", "doc123", "--secret", "other")
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestRemoteVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer a.b.c" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set(internalhttp.HeaderAuthUserID, "3")
		w.Header().Set(internalhttp.HeaderAuthUsername, "admin")
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, "remote-verify", "--url", srv.URL, "--token", "a.b.c")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"admin","userId":3}`, out)

	_, err = run(t, "remote-verify", "--url", srv.URL, "--token", "x.y.z")
	assert.Error(t, err)
}

func TestMissingRequiredFlag(t *testing.T) {
	_, err := run(t, "sign", "--username", "admin", "--user-id", "1")
	assert.ErrorContains(t, err, "secret")
}
