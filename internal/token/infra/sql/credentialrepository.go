package sql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/go-token-service/internal/token/domain"
	pkgsql "github.com/klwxsrx/go-token-service/pkg/sql"
)

const credentialTable = "credential"

type credentialRepository struct {
	db pkgsql.Client
}

func NewCredentialRepository(db pkgsql.Client) domain.CredentialRepository {
	return credentialRepository{db: db}
}

func (r credentialRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, "select nextval('credential_id_seq')")
	if err != nil {
		return 0, fmt.Errorf("get next credential id: %w", err)
	}

	return id, nil
}

func (r credentialRepository) Store(ctx context.Context, credential *domain.Credential) error {
	query, args, err := sq.
		Insert(credentialTable).
		Columns("id", "username", "secret_hash").
		Values(credential.UserID, credential.Username, credential.SecretHash).
		Suffix(`on conflict (id) do update set
			secret_hash = excluded.secret_hash,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrCredentialAlreadyExists, credential.Username)
	}

	return err
}

func (r credentialRepository) FindOne(ctx context.Context, spec domain.FindCredentialSpecification) (*domain.Credential, error) {
	query, args, err := buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxCredential
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, pkgsql.ErrNoRows) {
		return nil, domain.ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Credential{
		UserID:     row.ID,
		Username:   row.Username,
		SecretHash: row.SecretHash,
	}, nil
}

func buildFindQuery(spec domain.FindCredentialSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "username", "secret_hash").
		From(credentialTable)
	if len(spec.UserIDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.UserIDs})
	}
	if len(spec.Usernames) > 0 {
		qb = qb.Where(sq.Eq{"username": spec.Usernames})
	}

	return qb
}

type sqlxCredential struct {
	ID         int64  `db:"id"`
	Username   string `db:"username"`
	SecretHash string `db:"secret_hash"`
}
