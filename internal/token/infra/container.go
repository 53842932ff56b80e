package infra

import (
	"github.com/klwxsrx/go-token-service/data/sql/token"
	"github.com/klwxsrx/go-token-service/internal/pkg/cmd"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/internal/token/infra/sql"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/go-token-service/pkg/sql"
)

type SQLContainer struct {
	CredentialRepo lazy.Loader[domain.CredentialRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(token.Migrations)

		return SQLContainer{
			CredentialRepo: credentialRepoProvider(db),
		}, nil
	})
}

func credentialRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.CredentialRepository] {
	return lazy.New(func() (domain.CredentialRepository, error) {
		return sql.NewCredentialRepository(db.MustLoad()), nil
	})
}
