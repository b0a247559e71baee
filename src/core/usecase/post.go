package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
)

// PostService handles posts.
type PostService struct {
	repo     ports.PostRepository
	validate *Validator
	log      *slog.Logger
}

func NewPostService(repo ports.PostRepository, validate *Validator, log *slog.Logger) *PostService {
	return &PostService{repo: repo, validate: validate, log: log}
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListPosts(ctx)
}

func (s *PostService) Create(ctx context.Context, input domain.CreatePost) (*domain.Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	return s.repo.CreatePost(ctx, input)
}
