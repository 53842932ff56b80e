package http

import (
	"net/http"

	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

type VerifyLinkHandler struct {
	linkService service.Link
}

func NewVerifyLinkHandler(linkService service.Link) VerifyLinkHandler {
	return VerifyLinkHandler{linkService: linkService}
}

func (h VerifyLinkHandler) Method() string {
	return http.MethodPost
}

func (h VerifyLinkHandler) Path() string {
	return "/links/verification"
}

func (h VerifyLinkHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[verifyLinkIn](), err)
	if err != nil {
		return err
	}

	valid, err := h.linkService.VerifyLink(r.Context(), service.LinkToken(in.Token), in.ResourceID, in.UserID)
	if err != nil {
		return err
	}

	w.SetJSONBody(verifyLinkOut{Valid: valid})
	return nil
}

type (
	verifyLinkIn struct {
		Token      string `json:"token"`
		ResourceID string `json:"resourceId"`
		UserID     *int64 `json:"userId"`
	}

	verifyLinkOut struct {
		Valid bool `json:"valid"`
	}
)
