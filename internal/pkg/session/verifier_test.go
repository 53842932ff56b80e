package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/internal/pkg/session"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

func newVerifier(t *testing.T, handler http.HandlerFunc) session.Verifier {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return session.NewVerifier(pkghttp.NewClient(pkghttp.WithBaseURL(srv.URL)))
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/verification", r.URL.Path)
		assert.Equal(t, "Bearer a.b.c", r.Header.Get("Authorization"))

		w.Header().Set(internalhttp.HeaderAuthUserID, "3")
		w.Header().Set(internalhttp.HeaderAuthUsername, "admin")
		w.WriteHeader(http.StatusOK)
	})

	identity, err := v.Verify(context.Background(), "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, session.Identity{UserID: 3, Username: "admin"}, identity)
}

func TestVerifier_Verify_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "invalid status code 500")
				assert.NotErrorIs(t, err, auth.ErrUnauthenticated)
			},
		},
		{
			name: "missing user id header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "parse user id")
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := newVerifier(t, tc.handler)

			_, err := v.Verify(context.Background(), "a.b.c")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}
