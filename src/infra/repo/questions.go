package repo

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

const questionColumns = `id, content, correct_answer_id, band_id`

func (r *PostgresRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	const q = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	return queryOne[domain.Question](ctx, r, "get_question", "question", q, id)
}

func (r *PostgresRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	const q = `SELECT ` + questionColumns + ` FROM questions`
	return queryAll[domain.Question](ctx, r, "list_questions", q)
}

// ListQuestionsByBandIDs is the batch query behind the band -> questions
// loader. Any query or decode failure fails the whole batch.
func (r *PostgresRepository) ListQuestionsByBandIDs(ctx context.Context, bandIDs []uuid.UUID) ([]domain.Question, error) {
	const q = `SELECT ` + questionColumns + ` FROM questions WHERE band_id = ANY($1)`
	return queryAll[domain.Question](ctx, r, "list_questions_by_band_ids", q, bandIDs)
}

func (r *PostgresRepository) CreateQuestion(ctx context.Context, input domain.CreateQuestion) (*domain.Question, error) {
	const q = `
		INSERT INTO questions (content, band_id, correct_answer_id)
		VALUES ($1, $2, $3)
		RETURNING ` + questionColumns
	question, err := queryOne[domain.Question](ctx, r, "create_question", "question", q,
		input.Content, input.BandID, input.CorrectAnswerID)
	if err != nil {
		return nil, mapWriteError(err, "question "+input.Content+" already exists", map[string]string{
			"questions_band_id_fkey":           "band_id",
			"questions_correct_answer_id_fkey": "correct_answer_id",
		})
	}
	return question, nil
}
