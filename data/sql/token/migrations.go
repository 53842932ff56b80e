package token

import (
	"embed"

	"github.com/klwxsrx/go-token-service/pkg/sql"
)

var Migrations sql.MigrationSource = migrationFiles

//go:embed *.sql
var migrationFiles embed.FS
