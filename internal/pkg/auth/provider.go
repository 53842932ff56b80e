package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/klwxsrx/go-token-service/pkg/auth"
)

type (
	// Principal is the caller identity injected by the gateway after session verification
	Principal struct {
		UserID *int64
	}

	provider struct{}
)

func NewProvider() auth.Provider[Principal] {
	return provider{}
}

func (p provider) Authenticate(_ context.Context, token auth.Token) (auth.Authentication[Principal], error) {
	switch t := token.(type) {
	case UserIDToken:
		id := t.ID
		return auth.Auth[Principal]{AuthPrincipal: &Principal{UserID: &id}}, nil
	default:
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}
}

func (p Principal) Type() auth.PrincipalType {
	if p.UserID != nil {
		return PrincipalTypeUser
	}
	return "unknown"
}

func (p Principal) ID() *string {
	if p.UserID == nil {
		return nil
	}

	v := strconv.FormatInt(*p.UserID, 10)
	return &v
}
