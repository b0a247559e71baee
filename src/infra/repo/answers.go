package repo

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

const answerColumns = `id, content, created_at, updated_at`

func (r *PostgresRepository) GetAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	const q = `SELECT ` + answerColumns + ` FROM answers WHERE id = $1`
	return queryOne[domain.Answer](ctx, r, "get_answer", "answer", q, id)
}

func (r *PostgresRepository) ListAnswers(ctx context.Context) ([]domain.Answer, error) {
	const q = `SELECT ` + answerColumns + ` FROM answers ORDER BY created_at`
	return queryAll[domain.Answer](ctx, r, "list_answers", q)
}

func (r *PostgresRepository) ListAnswersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Answer, error) {
	const q = `SELECT ` + answerColumns + ` FROM answers WHERE id = ANY($1)`
	return queryAll[domain.Answer](ctx, r, "list_answers_by_ids", q, ids)
}

func (r *PostgresRepository) CreateAnswer(ctx context.Context, input domain.CreateAnswer) (*domain.Answer, error) {
	const q = `INSERT INTO answers (content) VALUES ($1) RETURNING ` + answerColumns
	a, err := queryOne[domain.Answer](ctx, r, "create_answer", "answer", q, input.Content)
	if err != nil {
		return nil, mapWriteError(err, "answer already exists", nil)
	}
	return a, nil
}
