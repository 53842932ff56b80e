//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Codec=Codec"
package codec

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/go-token-service/internal/token/domain"
)

var (
	ErrSigningFailed          = errors.New("token signing failed")
	ErrVerificationFailed     = errors.New("token verification failed")
	ErrMalformedToken         = errors.New("token format is invalid")
	ErrLinkVerificationFailed = errors.New("link token verification failed")
)

type (
	// Codec issues and checks HMAC-SHA256 signed session and link tokens
	Codec interface {
		// Sign returns an empty token on any failure, the error wraps ErrSigningFailed
		Sign(context.Context, domain.TokenInfo, Secret) (EncodedToken, error)
		// Verify returns an error wrapping ErrVerificationFailed and the cause for any invalid token
		Verify(context.Context, EncodedToken, domain.TokenInfo, Secret) error
		// TokenInfoByToken reads the session claims without checking the signature
		TokenInfoByToken(EncodedToken) (domain.TokenInfo, error)
		// ExpiresAt reads the expiration claim without checking the signature, nil means the token never expires
		ExpiresAt(EncodedToken) (*time.Time, error)
		SignLink(context.Context, domain.LinkScope, Secret) (EncodedToken, error)
		// VerifyLink returns an error wrapping ErrLinkVerificationFailed for any invalid token
		VerifyLink(context.Context, EncodedToken, domain.LinkScope, Secret) error
	}

	EncodedToken string
	Secret       string
)
