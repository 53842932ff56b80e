package http

import (
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

// VerifyAuthenticationHandler is called by the API gateway for every incoming request
// It takes the session token from the bearer header or the session cookie
// and returns 401 unless the token is valid for a known user
// On success the user identity is returned in internal auth headers
type VerifyAuthenticationHandler struct {
	authService service.Authentication
}

func NewVerifyAuthenticationHandler(authService service.Authentication) VerifyAuthenticationHandler {
	return VerifyAuthenticationHandler{authService: authService}
}

func (h VerifyAuthenticationHandler) Method() string {
	return http.MethodPost
}

func (h VerifyAuthenticationHandler) Path() string {
	return "/auth/verification"
}

func (h VerifyAuthenticationHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	token, err := pkghttp.ParseRequest(r, sessionTokenExtractor(), err)
	if err != nil {
		w.SetStatusCode(http.StatusUnauthorized)
		return fmt.Errorf("%w: %s", auth.ErrUnauthenticated, err.Error())
	}

	info, err := h.authService.VerifyAuthentication(r.Context(), service.SessionToken(token))
	if err != nil {
		return err
	}

	w.
		SetHeader(internalhttp.HeaderAuthUserID, strconv.FormatInt(info.UserID, 10)).
		SetHeader(internalhttp.HeaderAuthUsername, info.Username)
	return nil
}
