package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

type IssueLinkHandler struct {
	linkService service.Link
}

func NewIssueLinkHandler(linkService service.Link) IssueLinkHandler {
	return IssueLinkHandler{linkService: linkService}
}

func (h IssueLinkHandler) Method() string {
	return http.MethodPost
}

func (h IssueLinkHandler) Path() string {
	return "/links"
}

func (h IssueLinkHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[issueLinkIn](), err)
	if err != nil {
		return err
	}

	token, err := h.linkService.IssueLink(r.Context(), in.ResourceID, in.BindToUser)
	if errors.Is(err, service.ErrInvalidResourceID) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(linkTokenOut{Token: string(token)})
	return nil
}

type (
	issueLinkIn struct {
		ResourceID string `json:"resourceId"`
		BindToUser bool   `json:"bindToUser"`
	}

	linkTokenOut struct {
		Token string `json:"token"`
	}
)
