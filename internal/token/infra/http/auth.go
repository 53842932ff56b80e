package http

import (
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

const sessionCookieName = "dst"

func NewSessionCookie(token service.SessionTokenData) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    string(token.Token),
		Path:     "/",
		Expires:  token.ValidTill,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionTokenExtractor() pkghttp.DataExtractor[string] {
	return pkghttp.OneOf(
		pkghttp.BearerToken(),
		pkghttp.CookieValue[string](sessionCookieName),
	)
}
