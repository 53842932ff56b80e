package domain

import (
	"errors"
	"fmt"
	"strings"
)

const Name = "token"

var ErrInvalidTokenInfo = errors.New("invalid token info")

// TokenInfo is the identity carried by a session token
type TokenInfo struct {
	Username string
	UserID   int64
}

func NewTokenInfo(username string, userID int64) (TokenInfo, error) {
	if strings.TrimSpace(username) == "" {
		return TokenInfo{}, fmt.Errorf("%w: username is empty", ErrInvalidTokenInfo)
	}

	return TokenInfo{Username: username, UserID: userID}, nil
}

// LinkScope is the resource a link token grants access to, UserID is nil for links not bound to a user
type LinkScope struct {
	ResourceID string
	UserID     *int64
}

func (s LinkScope) IsBoundToUser() bool {
	return s.UserID != nil
}
