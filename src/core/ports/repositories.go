// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository stores users.
type UserRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUser, passwordHash string) (*domain.User, error)

	// ListUsersByIDs returns the users whose id is in ids, in no particular order.
	ListUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// PostRepository stores posts.
type PostRepository interface {
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, input domain.CreatePost) (*domain.Post, error)

	// ListPostsByAuthorIDs returns every post written by any of authorIDs.
	ListPostsByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]domain.Post, error)
}

// AnswerRepository stores answers.
type AnswerRepository interface {
	GetAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	ListAnswers(ctx context.Context) ([]domain.Answer, error)
	CreateAnswer(ctx context.Context, input domain.CreateAnswer) (*domain.Answer, error)

	// ListAnswersByIDs returns the answers whose id is in ids.
	ListAnswersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Answer, error)
}

// QuestionRepository stores questions.
type QuestionRepository interface {
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, input domain.CreateQuestion) (*domain.Question, error)

	// ListQuestionsByBandIDs returns every question belonging to any of bandIDs.
	ListQuestionsByBandIDs(ctx context.Context, bandIDs []uuid.UUID) ([]domain.Question, error)
}

// BandRepository stores bands.
type BandRepository interface {
	GetBand(ctx context.Context, id uuid.UUID) (*domain.Band, error)
	ListBands(ctx context.Context) ([]domain.Band, error)
	CreateBand(ctx context.Context, input domain.CreateBand) (*domain.Band, error)

	// ListBandsByIDs returns the bands whose id is in ids.
	ListBandsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Band, error)

	// ListBandsByOwnerIDs returns every band owned by any of ownerIDs.
	ListBandsByOwnerIDs(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.Band, error)
}

// Store is a composite repository covering every entity.
type Store interface {
	Repository
	UserRepository
	PostRepository
	AnswerRepository
	QuestionRepository
	BandRepository
}
