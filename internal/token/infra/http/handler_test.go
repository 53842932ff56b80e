package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internalauth "github.com/klwxsrx/go-token-service/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	servicemock "github.com/klwxsrx/go-token-service/internal/token/app/service/mock"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	tokenhttp "github.com/klwxsrx/go-token-service/internal/token/infra/http"
	pkgauth "github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

type handlerSuite struct {
	authService *servicemock.Authentication
	linkService *servicemock.Link
	server      pkghttp.Server
}

func newHandlerSuite(t *testing.T) handlerSuite {
	ctrl := gomock.NewController(t)
	s := handlerSuite{
		authService: servicemock.NewAuthentication(ctrl),
		linkService: servicemock.NewLink(ctrl),
		server: pkghttp.NewServer(
			pkghttp.DefaultServerAddress,
			pkghttp.WithErrorMapping(map[int][]error{http.StatusUnauthorized: {pkgauth.ErrUnauthenticated}}),
			pkghttp.WithAuth[internalauth.Principal](internalauth.NewProvider(), internalhttp.UserIDTokenProvider),
		),
	}

	s.server.Register(tokenhttp.NewRegisterCredentialHandler(s.authService))
	s.server.Register(tokenhttp.NewAuthenticateHandler(s.authService))
	s.server.Register(tokenhttp.NewVerifyAuthenticationHandler(s.authService))
	s.server.Register(tokenhttp.NewTokenInfoHandler(s.authService))
	s.server.Register(tokenhttp.NewIssueLinkHandler(s.linkService), pkghttp.WithAuthenticationRequirement())
	s.server.Register(tokenhttp.NewVerifyLinkHandler(s.linkService))
	return s
}

func (s handlerSuite) do(r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.HTTPHandler().ServeHTTP(rec, r)
	return rec
}

func TestRegisterCredentialHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"already exists", domain.ErrCredentialAlreadyExists, http.StatusConflict},
		{"unexpected error", errors.New("db is down"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newHandlerSuite(t)
			s.authService.EXPECT().Register(gomock.Any(), "admin", "secret").Return(int64(7), tc.err)

			rec := s.do(httptest.NewRequest(http.MethodPost, "/credentials", strings.NewReader(`{"login":"admin","password":"secret"}`)))

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.err == nil {
				assert.JSONEq(t, `{"id":7}`, rec.Body.String())
			}
		})
	}
}

func TestRegisterCredentialHandler_RejectsMalformedBody(t *testing.T) {
	t.Parallel()
	s := newHandlerSuite(t)

	rec := s.do(httptest.NewRequest(http.MethodPost, "/credentials", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticateHandler(t *testing.T) {
	t.Parallel()

	t.Run("sets session cookie", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		validTill := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
		s.authService.EXPECT().Authenticate(gomock.Any(), "admin", "secret").Return(service.SessionTokenData{
			Token:     "a.b.c",
			ValidTill: validTill,
		}, nil)

		rec := s.do(httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"login":"admin","password":"secret"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		var out struct {
			Token     string    `json:"token"`
			ValidTill time.Time `json:"validTill"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "a.b.c", out.Token)
		assert.True(t, validTill.Equal(out.ValidTill))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "dst", cookies[0].Name)
		assert.Equal(t, "a.b.c", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.authService.EXPECT().Authenticate(gomock.Any(), "admin", "wrong").Return(service.SessionTokenData{}, pkgauth.ErrUnauthenticated)

		rec := s.do(httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"login":"admin","password":"wrong"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)

		rec := s.do(httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`not json`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestVerifyAuthenticationHandler(t *testing.T) {
	t.Parallel()

	info := domain.TokenInfo{UserID: 3, Username: "admin"}
	tests := []struct {
		name    string
		request func() *http.Request
	}{
		{"bearer token", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/auth/verification", nil)
			r.Header.Set("Authorization", "Bearer a.b.c")
			return r
		}},
		{"session cookie", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/auth/verification", nil)
			r.AddCookie(&http.Cookie{Name: "dst", Value: "a.b.c"})
			return r
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newHandlerSuite(t)
			s.authService.EXPECT().VerifyAuthentication(gomock.Any(), service.SessionToken("a.b.c")).Return(info, nil)

			rec := s.do(tc.request())

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "3", rec.Header().Get(internalhttp.HeaderAuthUserID))
			assert.Equal(t, "admin", rec.Header().Get(internalhttp.HeaderAuthUsername))
		})
	}

	t.Run("no token", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)

		rec := s.do(httptest.NewRequest(http.MethodPost, "/auth/verification", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.authService.EXPECT().VerifyAuthentication(gomock.Any(), service.SessionToken("a.b.c")).Return(domain.TokenInfo{}, pkgauth.ErrUnauthenticated)

		r := httptest.NewRequest(http.MethodPost, "/auth/verification", nil)
		r.Header.Set("Authorization", "Bearer a.b.c")
		rec := s.do(r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Get(internalhttp.HeaderAuthUserID))
	})
}

func TestTokenInfoHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns claims", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.authService.EXPECT().InspectSessionToken(service.SessionToken("a.b.c")).Return(domain.TokenInfo{UserID: 3, Username: "admin"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/auth/token-info", nil)
		r.Header.Set("Authorization", "Bearer a.b.c")
		rec := s.do(r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"admin","userId":3}`, rec.Body.String())
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.authService.EXPECT().InspectSessionToken(service.SessionToken("garbage")).Return(domain.TokenInfo{}, codec.ErrMalformedToken)

		r := httptest.NewRequest(http.MethodGet, "/auth/token-info", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		rec := s.do(r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIssueLinkHandler(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)

		rec := s.do(httptest.NewRequest(http.MethodPost, "/links", strings.NewReader(`{"resourceId":"42"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("issues link", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.linkService.EXPECT().IssueLink(gomock.Any(), "42", true).Return(service.LinkToken("l.i.nk"), nil)

		r := httptest.NewRequest(http.MethodPost, "/links", strings.NewReader(`{"resourceId":"42","bindToUser":true}`))
		r.Header.Set(internalhttp.HeaderAuthUserID, "3")
		rec := s.do(r)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"token":"l.i.nk"}`, rec.Body.String())
	})

	t.Run("invalid resource id", func(t *testing.T) {
		t.Parallel()
		s := newHandlerSuite(t)
		s.linkService.EXPECT().IssueLink(gomock.Any(), "", false).Return(service.LinkToken(""), service.ErrInvalidResourceID)

		r := httptest.NewRequest(http.MethodPost, "/links", strings.NewReader(`{"resourceId":""}`))
		r.Header.Set(internalhttp.HeaderAuthUserID, "3")
		rec := s.do(r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyLinkHandler(t *testing.T) {
	t.Parallel()

	userID := int64(3)
	tests := []struct {
		name   string
		body   string
		userID *int64
		valid  bool
	}{
		{"valid anonymous link", `{"token":"l.i.nk","resourceId":"42"}`, nil, true},
		{"invalid user link", `{"token":"l.i.nk","resourceId":"42","userId":3}`, &userID, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newHandlerSuite(t)
			s.linkService.EXPECT().VerifyLink(gomock.Any(), service.LinkToken("l.i.nk"), "42", tc.userID).Return(tc.valid, nil)

			rec := s.do(httptest.NewRequest(http.MethodPost, "/links/verification", strings.NewReader(tc.body)))

			assert.Equal(t, http.StatusOK, rec.Code)
			var out struct {
				Valid bool `json:"valid"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, tc.valid, out.Valid)
		})
	}
}
