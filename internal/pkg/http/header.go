package http

import (
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

const (
	RequestIDHeader = pkghttp.DefaultRequestIDHeader

	HeaderAuthUserID   = "X-Auth-User-ID"
	HeaderAuthUsername = "X-Auth-Username"
)

func UserIDTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.Header[int64](HeaderAuthUserID), nil)
	if err != nil || userID <= 0 {
		return nil, false
	}

	return auth.UserIDToken{ID: userID}, true
}
