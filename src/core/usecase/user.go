package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
)

// UserService handles user registration and lookup.
type UserService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	validate *Validator
	log      *slog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, validate *Validator, log *slog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, validate: validate, log: log}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// Create validates input, hashes the password and stores the user.
func (s *UserService) Create(ctx context.Context, input domain.CreateUser) (*domain.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.CreateUser(ctx, input, hash)
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID)
	return user, nil
}
