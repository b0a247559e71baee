package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bandquiz/src/core/ports"
	"bandquiz/src/infra/db"
	"bandquiz/src/infra/logger"
)

// SQLSTATE codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// PostgresRepository implements ports.Store using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.Store = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  logger.WithComponent(log, "repo"),
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeForeignKeyViolation
}

// queryAll runs q and scans every row into T by column name.
func queryAll[T any](ctx context.Context, r *PostgresRepository, name, q string, args ...any) ([]T, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		logger.Error(r.log, "query failed", "query", name, "error", err)
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Error(r.log, "failed to scan rows", "query", name, "error", err)
		return nil, err
	}
	return items, nil
}

// queryOne runs q and scans exactly one row into T. No rows maps to a
// not found error for resource.
func queryOne[T any](ctx context.Context, r *PostgresRepository, name, resource, q string, args ...any) (*T, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		logger.Error(r.log, "query failed", "query", name, "error", err)
		return nil, err
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(resource)
		}
		logger.Error(r.log, "failed to scan row", "query", name, "error", err)
		return nil, err
	}
	return item, nil
}
