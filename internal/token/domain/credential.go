//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CredentialRepository=CredentialRepository"
package domain

import (
	"context"
	"errors"
)

var (
	ErrCredentialNotFound      = errors.New("credential not found")
	ErrCredentialAlreadyExists = errors.New("credential already exists")
)

type (
	// Credential holds the per-user signing secret, SecretHash is the bcrypt hash of the user password
	Credential struct {
		UserID     int64
		Username   string
		SecretHash string
	}

	CredentialRepository interface {
		NextID(context.Context) (int64, error)
		Store(context.Context, *Credential) error
		FindOne(context.Context, FindCredentialSpecification) (*Credential, error)
	}

	FindCredentialSpecification struct {
		UserIDs   []int64
		Usernames []string
	}
)

func (c *Credential) TokenInfo() TokenInfo {
	return TokenInfo{
		Username: c.Username,
		UserID:   c.UserID,
	}
}
