package gql

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

// memStore is an in-memory ports.Store that records every batch query.
type memStore struct {
	mu        sync.Mutex
	users     []domain.User
	posts     []domain.Post
	answers   []domain.Answer
	questions []domain.Question
	bands     []domain.Band

	batches  map[string][][]uuid.UUID
	batchErr map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		batches:  make(map[string][][]uuid.UUID),
		batchErr: make(map[string]error),
	}
}

func (s *memStore) record(name string, keys []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[name] = append(s.batches[name], slices.Clone(keys))
	return s.batchErr[name]
}

func (s *memStore) calls(name string) [][]uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches[name]
}

func (s *memStore) Health(context.Context) error { return nil }

func (s *memStore) addUser(name string) domain.User {
	now := time.Now().UTC()
	u := domain.User{ID: uuid.New(), Username: name, Email: name + "@example.com", CreatedAt: now, UpdatedAt: now}
	s.users = append(s.users, u)
	return u
}

func (s *memStore) addBand(name string, owner uuid.UUID) domain.Band {
	now := time.Now().UTC()
	b := domain.Band{ID: uuid.New(), Name: name, OwnerID: owner, CreatedAt: now, UpdatedAt: now}
	s.bands = append(s.bands, b)
	return b
}

func (s *memStore) addAnswer(content string) domain.Answer {
	now := time.Now().UTC()
	a := domain.Answer{ID: uuid.New(), Content: content, CreatedAt: now, UpdatedAt: now}
	s.answers = append(s.answers, a)
	return a
}

func (s *memStore) addQuestion(content string, band, answer uuid.UUID) domain.Question {
	q := domain.Question{ID: uuid.New(), Content: content, BandID: band, CorrectAnswerID: answer}
	s.questions = append(s.questions, q)
	return q
}

func (s *memStore) addPost(title string, author uuid.UUID) domain.Post {
	now := time.Now().UTC()
	p := domain.Post{ID: uuid.New(), AuthorID: author, Slug: title, Title: title, Body: title, CreatedAt: now, UpdatedAt: now}
	s.posts = append(s.posts, p)
	return p
}

func find[T any](items []T, match func(T) bool, resource string) (*T, error) {
	for i := range items {
		if match(items[i]) {
			v := items[i]
			return &v, nil
		}
	}
	return nil, domain.NewNotFoundError(resource)
}

func filter[T any](items []T, keys []uuid.UUID, keyOf func(T) uuid.UUID) []T {
	var out []T
	for _, item := range items {
		if slices.Contains(keys, keyOf(item)) {
			out = append(out, item)
		}
	}
	return out
}

func (s *memStore) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return find(s.users, func(u domain.User) bool { return u.ID == id }, "user")
}

func (s *memStore) ListUsers(context.Context) ([]domain.User, error) { return s.users, nil }

func (s *memStore) CreateUser(_ context.Context, in domain.CreateUser, hash string) (*domain.User, error) {
	u := s.addUser(in.Username)
	u.PasswordHash = hash
	return &u, nil
}

func (s *memStore) ListUsersByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if err := s.record("users_by_ids", ids); err != nil {
		return nil, err
	}
	return filter(s.users, ids, func(u domain.User) uuid.UUID { return u.ID }), nil
}

func (s *memStore) GetPost(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	return find(s.posts, func(p domain.Post) bool { return p.ID == id }, "post")
}

func (s *memStore) ListPosts(context.Context) ([]domain.Post, error) { return s.posts, nil }

func (s *memStore) CreatePost(_ context.Context, in domain.CreatePost) (*domain.Post, error) {
	p := s.addPost(in.Title, in.AuthorID)
	return &p, nil
}

func (s *memStore) ListPostsByAuthorIDs(_ context.Context, ids []uuid.UUID) ([]domain.Post, error) {
	if err := s.record("posts_by_author", ids); err != nil {
		return nil, err
	}
	return filter(s.posts, ids, func(p domain.Post) uuid.UUID { return p.AuthorID }), nil
}

func (s *memStore) GetAnswer(_ context.Context, id uuid.UUID) (*domain.Answer, error) {
	return find(s.answers, func(a domain.Answer) bool { return a.ID == id }, "answer")
}

func (s *memStore) ListAnswers(context.Context) ([]domain.Answer, error) { return s.answers, nil }

func (s *memStore) CreateAnswer(_ context.Context, in domain.CreateAnswer) (*domain.Answer, error) {
	a := s.addAnswer(in.Content)
	return &a, nil
}

func (s *memStore) ListAnswersByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Answer, error) {
	if err := s.record("answers_by_ids", ids); err != nil {
		return nil, err
	}
	return filter(s.answers, ids, func(a domain.Answer) uuid.UUID { return a.ID }), nil
}

func (s *memStore) GetQuestion(_ context.Context, id uuid.UUID) (*domain.Question, error) {
	return find(s.questions, func(q domain.Question) bool { return q.ID == id }, "question")
}

func (s *memStore) ListQuestions(context.Context) ([]domain.Question, error) { return s.questions, nil }

func (s *memStore) CreateQuestion(_ context.Context, in domain.CreateQuestion) (*domain.Question, error) {
	q := s.addQuestion(in.Content, in.BandID, in.CorrectAnswerID)
	return &q, nil
}

func (s *memStore) ListQuestionsByBandIDs(_ context.Context, ids []uuid.UUID) ([]domain.Question, error) {
	if err := s.record("questions_by_band", ids); err != nil {
		return nil, err
	}
	return filter(s.questions, ids, func(q domain.Question) uuid.UUID { return q.BandID }), nil
}

func (s *memStore) GetBand(_ context.Context, id uuid.UUID) (*domain.Band, error) {
	return find(s.bands, func(b domain.Band) bool { return b.ID == id }, "band")
}

func (s *memStore) ListBands(context.Context) ([]domain.Band, error) { return s.bands, nil }

func (s *memStore) CreateBand(_ context.Context, in domain.CreateBand) (*domain.Band, error) {
	b := s.addBand(in.Name, in.OwnerID)
	return &b, nil
}

func (s *memStore) ListBandsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Band, error) {
	if err := s.record("bands_by_ids", ids); err != nil {
		return nil, err
	}
	return filter(s.bands, ids, func(b domain.Band) uuid.UUID { return b.ID }), nil
}

func (s *memStore) ListBandsByOwnerIDs(_ context.Context, ids []uuid.UUID) ([]domain.Band, error) {
	if err := s.record("bands_by_owner", ids); err != nil {
		return nil, err
	}
	return filter(s.bands, ids, func(b domain.Band) uuid.UUID { return b.OwnerID }), nil
}
