package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
)

// QuestionService handles questions.
type QuestionService struct {
	repo     ports.QuestionRepository
	validate *Validator
	log      *slog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, validate *Validator, log *slog.Logger) *QuestionService {
	return &QuestionService{repo: repo, validate: validate, log: log}
}

func (s *QuestionService) Get(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return s.repo.GetQuestion(ctx, id)
}

func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	return s.repo.ListQuestions(ctx)
}

// Create adds a question to a band. The band and the correct answer must
// already exist; the repository reports which one is missing.
func (s *QuestionService) Create(ctx context.Context, input domain.CreateQuestion) (*domain.Question, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	return s.repo.CreateQuestion(ctx, input)
}
