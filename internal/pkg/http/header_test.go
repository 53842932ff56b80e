package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/go-token-service/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
)

func TestUserIDTokenProvider(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		header string
		token  *auth.UserIDToken
	}{
		{name: "valid", header: "42", token: &auth.UserIDToken{ID: 42}},
		{name: "missing", header: ""},
		{name: "not_a_number", header: "admin"},
		{name: "not_positive", header: "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set(internalhttp.HeaderAuthUserID, tc.header)
			}

			token, ok := internalhttp.UserIDTokenProvider(r)
			if tc.token == nil {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, *tc.token, token)
		})
	}
}
