package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

// TokenInfoHandler returns the claims of a session token without checking its signature
type TokenInfoHandler struct {
	authService service.Authentication
}

func NewTokenInfoHandler(authService service.Authentication) TokenInfoHandler {
	return TokenInfoHandler{authService: authService}
}

func (h TokenInfoHandler) Method() string {
	return http.MethodGet
}

func (h TokenInfoHandler) Path() string {
	return "/auth/token-info"
}

func (h TokenInfoHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	token, err := pkghttp.ParseRequest(r, sessionTokenExtractor(), err)
	if err != nil {
		return err
	}

	info, err := h.authService.InspectSessionToken(service.SessionToken(token))
	if errors.Is(err, codec.ErrMalformedToken) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(tokenInfoOut{
		Username: info.Username,
		UserID:   info.UserID,
	})
	return nil
}

type tokenInfoOut struct {
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
}
