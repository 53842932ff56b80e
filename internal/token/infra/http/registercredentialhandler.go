package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

type RegisterCredentialHandler struct {
	authService service.Authentication
}

func NewRegisterCredentialHandler(authService service.Authentication) RegisterCredentialHandler {
	return RegisterCredentialHandler{authService: authService}
}

func (h RegisterCredentialHandler) Method() string {
	return http.MethodPost
}

func (h RegisterCredentialHandler) Path() string {
	return "/credentials"
}

func (h RegisterCredentialHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[credentialsIn](), err)
	if err != nil {
		return err
	}

	userID, err := h.authService.Register(r.Context(), in.Login, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if errors.Is(err, domain.ErrCredentialAlreadyExists) {
		w.SetStatusCode(http.StatusConflict)
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(registerCredentialOut{ID: userID})
	return nil
}

type (
	credentialsIn struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	registerCredentialOut struct {
		ID int64 `json:"id"`
	}
)
