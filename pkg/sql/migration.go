package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/go-token-service/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

var errEmptyMigration = errors.New("empty migration")

// MigrationSource holds *.sql files executed in lexical order
type MigrationSource fs.ReadDirFS

type Migrator struct {
	db     TxClient
	logger log.Logger
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		err = m.executeSource(ctx, source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) executeSource(ctx context.Context, source MigrationSource) error {
	ids, err := migrationIDs(source)
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}

	for _, id := range ids {
		content, err := fs.ReadFile(source, id)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", id, err)
		}

		err = m.executeMigration(ctx, id, string(content))
		if err != nil {
			return fmt.Errorf("migration %s: %w", id, err)
		}
	}
	return nil
}

func (m *Migrator) executeMigration(ctx context.Context, id, content string) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = withTransactionLevelLock(ctx, migrationLock, tx)
	if err != nil {
		return err
	}

	var performed bool
	err = tx.GetContext(ctx, &performed, "select exists(select 1 from migration where id = $1)", id)
	if err != nil {
		return fmt.Errorf("check migration: %w", err)
	}
	if performed {
		return tx.Rollback()
	}

	queries := splitToQueries(content)
	if len(queries) == 0 {
		return errEmptyMigration
	}
	for _, query := range queries {
		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, "insert into migration (id) values ($1)", id)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	m.logger.WithField("migrationID", id).Info(ctx, "migration executed successfully")
	return nil
}

func migrationIDs(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func splitToQueries(content string) []string {
	parts := strings.Split(content, querySeparator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if query := strings.TrimSpace(part); query != "" {
			result = append(result, query)
		}
	}
	return result
}
