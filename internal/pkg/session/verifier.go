package session

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
)

const verifyAuthenticationPath = "/auth/verification"

type (
	// Identity is the user a session token was issued for
	Identity struct {
		UserID   int64
		Username string
	}

	Verifier interface {
		Verify(ctx context.Context, token string) (Identity, error)
	}

	verifier struct {
		client pkghttp.Client
	}
)

func NewVerifier(client pkghttp.Client) Verifier {
	return verifier{client: client}
}

func (v verifier) Verify(ctx context.Context, token string) (Identity, error) {
	resp, err := v.client.NewRequest(ctx).
		SetAuthToken(token).
		Post(verifyAuthenticationPath)
	if err != nil {
		return Identity{}, fmt.Errorf("request token.verifyAuthentication: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return Identity{}, auth.ErrUnauthenticated
	}
	if resp.StatusCode() != http.StatusOK {
		return Identity{}, fmt.Errorf("request token.verifyAuthentication: invalid status code %d", resp.StatusCode())
	}

	userID, err := strconv.ParseInt(resp.Header().Get(internalhttp.HeaderAuthUserID), 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("token.verifyAuthentication response: parse user id: %w", err)
	}

	return Identity{
		UserID:   userID,
		Username: resp.Header().Get(internalhttp.HeaderAuthUsername),
	}, nil
}
