package auth

import (
	"github.com/klwxsrx/go-token-service/pkg/auth"
)

const PrincipalTypeUser auth.PrincipalType = "user"

type UserIDToken struct {
	ID int64
}

func (t UserIDToken) Type() auth.PrincipalType {
	return PrincipalTypeUser
}
