package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

type AuthenticateHandler struct {
	authService service.Authentication
}

func NewAuthenticateHandler(authService service.Authentication) AuthenticateHandler {
	return AuthenticateHandler{authService: authService}
}

func (h AuthenticateHandler) Method() string {
	return http.MethodPost
}

func (h AuthenticateHandler) Path() string {
	return "/auth"
}

func (h AuthenticateHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[credentialsIn](), err)
	if err != nil {
		w.SetStatusCode(http.StatusUnauthorized)
		return fmt.Errorf("%w: %s", auth.ErrUnauthenticated, err.Error())
	}

	token, err := h.authService.Authenticate(r.Context(), in.Login, in.Password)
	if err != nil {
		return err
	}

	w.SetCookie(NewSessionCookie(token)).SetJSONBody(authenticateOut{
		Token:     string(token.Token),
		ValidTill: token.ValidTill,
	})
	return nil
}

type authenticateOut struct {
	Token     string    `json:"token"`
	ValidTill time.Time `json:"validTill"`
}
