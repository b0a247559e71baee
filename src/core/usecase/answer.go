package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
)

// AnswerService handles answers.
type AnswerService struct {
	repo     ports.AnswerRepository
	validate *Validator
	log      *slog.Logger
}

func NewAnswerService(repo ports.AnswerRepository, validate *Validator, log *slog.Logger) *AnswerService {
	return &AnswerService{repo: repo, validate: validate, log: log}
}

func (s *AnswerService) Get(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	return s.repo.GetAnswer(ctx, id)
}

func (s *AnswerService) List(ctx context.Context) ([]domain.Answer, error) {
	return s.repo.ListAnswers(ctx)
}

func (s *AnswerService) Create(ctx context.Context, input domain.CreateAnswer) (*domain.Answer, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	return s.repo.CreateAnswer(ctx, input)
}
