package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	claimUsername   = "username"
	claimUserID     = "userId"
	claimResourceID = "resourceId"
)

// sessionClaims fields are pointers to tell a missing claim from a zero value
type sessionClaims struct {
	Username *string `json:"username,omitempty"`
	UserID   *int64  `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

type linkClaims struct {
	ResourceID *string `json:"resourceId,omitempty"`
	UserID     *int64  `json:"userId,omitempty"`
	jwt.RegisteredClaims
}
