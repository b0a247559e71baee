package repo

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

const userColumns = `id, username, email, password, bio, image, created_at, updated_at`

func (r *PostgresRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return queryOne[domain.User](ctx, r, "get_user", "user", q, id)
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	return queryAll[domain.User](ctx, r, "list_users", q)
}

func (r *PostgresRepository) ListUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`
	return queryAll[domain.User](ctx, r, "list_users_by_ids", q, ids)
}

func (r *PostgresRepository) CreateUser(ctx context.Context, input domain.CreateUser, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (username, email, password, bio, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	u, err := queryOne[domain.User](ctx, r, "create_user", "user", q,
		input.Username, input.Email, passwordHash, input.Bio, input.Image)
	if err != nil {
		return nil, mapWriteError(err, "username or email already taken", nil)
	}
	return u, nil
}
