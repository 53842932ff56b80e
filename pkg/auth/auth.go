package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is answered with 401, handlers wrap it around token and credential rejections
var ErrUnauthenticated = errors.New("not authenticated")

type (
	// Provider resolves the caller identity the gateway put in front of a request, e.g. the user id header
	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Token interface {
		Type() PrincipalType
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	// Principal is the resolved caller, ID is nil when the caller is anonymous
	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	PrincipalType string
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
