package gql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
	"bandquiz/src/infra/dataloader"
	"bandquiz/src/infra/logger"
)

// Loaders holds the batch loaders for one GraphQL request. Their caches
// live as long as the request; never share a Loaders across requests.
type Loaders struct {
	PostsByAuthor   *dataloader.Loader[uuid.UUID, []domain.Post]
	BandsByOwner    *dataloader.Loader[uuid.UUID, []domain.Band]
	QuestionsByBand *dataloader.Loader[uuid.UUID, []domain.Question]
	UserByID        *dataloader.Loader[uuid.UUID, *domain.User]
	BandByID        *dataloader.Loader[uuid.UUID, *domain.Band]
	AnswerByID      *dataloader.Loader[uuid.UUID, *domain.Answer]
}

// NewLoaders creates a fresh set of loaders backed by store.
func NewLoaders(store ports.Store, cfg dataloader.Config, log *slog.Logger) *Loaders {
	if log == nil {
		log = logger.Discard()
	}
	log = logger.WithComponent(log, "dataloader")
	return &Loaders{
		PostsByAuthor: dataloader.NewGroupLoader(store.ListPostsByAuthorIDs,
			func(p domain.Post) uuid.UUID { return p.AuthorID }, cfg).
			WithLogger(log.With("loader", "posts_by_author")),
		BandsByOwner: dataloader.NewGroupLoader(store.ListBandsByOwnerIDs,
			func(b domain.Band) uuid.UUID { return b.OwnerID }, cfg).
			WithLogger(log.With("loader", "bands_by_owner")),
		QuestionsByBand: dataloader.NewGroupLoader(store.ListQuestionsByBandIDs,
			func(q domain.Question) uuid.UUID { return q.BandID }, cfg).
			WithLogger(log.With("loader", "questions_by_band")),
		UserByID: dataloader.NewIndexLoader(store.ListUsersByIDs,
			func(u domain.User) uuid.UUID { return u.ID }, cfg).
			WithLogger(log.With("loader", "user_by_id")),
		BandByID: dataloader.NewIndexLoader(store.ListBandsByIDs,
			func(b domain.Band) uuid.UUID { return b.ID }, cfg).
			WithLogger(log.With("loader", "band_by_id")),
		AnswerByID: dataloader.NewIndexLoader(store.ListAnswersByIDs,
			func(a domain.Answer) uuid.UUID { return a.ID }, cfg).
			WithLogger(log.With("loader", "answer_by_id")),
	}
}

type loadersKey struct{}

// WithLoaders attaches l to ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, l)
}

var errNoLoaders = errors.New("gql: request context has no loaders")

// LoadersFrom returns the loaders attached to ctx.
func LoadersFrom(ctx context.Context) (*Loaders, error) {
	l, ok := ctx.Value(loadersKey{}).(*Loaders)
	if !ok || l == nil {
		return nil, errNoLoaders
	}
	return l, nil
}
