package repo

import (
	"context"
	"database/sql"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewPostgresRepo serves orders, carts and products from one database.
// Every query joins the transaction bound to ctx, if any.
func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, trm.Executor(ctx, r.db), dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, trm.Executor(ctx, r.db), dest, query, args...)
}

// idStrings lets squirrel expand ids into an IN list. uuid.UUID is an array and
// would otherwise be expanded byte by byte.
func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
