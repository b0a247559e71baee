package repo

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

const postColumns = `id, author_id, slug, title, description, body, created_at, updated_at`

func (r *PostgresRepository) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return queryOne[domain.Post](ctx, r, "get_post", "post", q, id)
}

func (r *PostgresRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts ORDER BY created_at`
	return queryAll[domain.Post](ctx, r, "list_posts", q)
}

func (r *PostgresRepository) ListPostsByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE author_id = ANY($1) ORDER BY created_at`
	return queryAll[domain.Post](ctx, r, "list_posts_by_author_ids", q, authorIDs)
}

func (r *PostgresRepository) CreatePost(ctx context.Context, input domain.CreatePost) (*domain.Post, error) {
	const q = `
		INSERT INTO posts (author_id, slug, title, description, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns
	p, err := queryOne[domain.Post](ctx, r, "create_post", "post", q,
		input.AuthorID, input.Slug, input.Title, input.Description, input.Body)
	if err != nil {
		return nil, mapWriteError(err, "post "+input.Slug+" already exists", map[string]string{
			"posts_author_id_fkey": "author_id",
		})
	}
	return p, nil
}
