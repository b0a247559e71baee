package gql

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"bandquiz/src/core/domain"
	"bandquiz/src/infra/dataloader"
)

var (
	nonNullUUID     = graphql.NewNonNull(UUID)
	nonNullString   = graphql.NewNonNull(graphql.String)
	nonNullDateTime = graphql.NewNonNull(graphql.DateTime)
)

// objectTypes holds the output types of the schema.
type objectTypes struct {
	user     *graphql.Object
	post     *graphql.Object
	answer   *graphql.Object
	question *graphql.Object
	band     *graphql.Object
}

func newObjectTypes() *objectTypes {
	t := &objectTypes{}

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        prop(nonNullUUID, func(u domain.User) any { return u.ID }),
			"username":  prop(nonNullString, func(u domain.User) any { return u.Username }),
			"email":     prop(nonNullString, func(u domain.User) any { return u.Email }),
			"bio":       prop(graphql.String, func(u domain.User) any { return u.Bio }),
			"image":     prop(graphql.String, func(u domain.User) any { return u.Image }),
			"createdAt": prop(nonNullDateTime, func(u domain.User) any { return u.CreatedAt }),
			"updatedAt": prop(nonNullDateTime, func(u domain.User) any { return u.UpdatedAt }),
		},
	})

	t.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":          prop(nonNullUUID, func(p domain.Post) any { return p.ID }),
			"authorId":    prop(nonNullUUID, func(p domain.Post) any { return p.AuthorID }),
			"slug":        prop(nonNullString, func(p domain.Post) any { return p.Slug }),
			"title":       prop(nonNullString, func(p domain.Post) any { return p.Title }),
			"description": prop(nonNullString, func(p domain.Post) any { return p.Description }),
			"body":        prop(nonNullString, func(p domain.Post) any { return p.Body }),
			"createdAt":   prop(nonNullDateTime, func(p domain.Post) any { return p.CreatedAt }),
			"updatedAt":   prop(nonNullDateTime, func(p domain.Post) any { return p.UpdatedAt }),
		},
	})

	t.answer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Answer",
		Fields: graphql.Fields{
			"id":        prop(nonNullUUID, func(a domain.Answer) any { return a.ID }),
			"content":   prop(nonNullString, func(a domain.Answer) any { return a.Content }),
			"createdAt": prop(nonNullDateTime, func(a domain.Answer) any { return a.CreatedAt }),
			"updatedAt": prop(nonNullDateTime, func(a domain.Answer) any { return a.UpdatedAt }),
		},
	})

	t.question = graphql.NewObject(graphql.ObjectConfig{
		Name: "Question",
		Fields: graphql.Fields{
			"id":              prop(nonNullUUID, func(q domain.Question) any { return q.ID }),
			"content":         prop(nonNullString, func(q domain.Question) any { return q.Content }),
			"bandId":          prop(nonNullUUID, func(q domain.Question) any { return q.BandID }),
			"correctAnswerId": prop(nonNullUUID, func(q domain.Question) any { return q.CorrectAnswerID }),
		},
	})

	t.band = graphql.NewObject(graphql.ObjectConfig{
		Name: "Band",
		Fields: graphql.Fields{
			"id":        prop(nonNullUUID, func(b domain.Band) any { return b.ID }),
			"name":      prop(nonNullString, func(b domain.Band) any { return b.Name }),
			"ownerId":   prop(nonNullUUID, func(b domain.Band) any { return b.OwnerID }),
			"createdAt": prop(nonNullDateTime, func(b domain.Band) any { return b.CreatedAt }),
			"updatedAt": prop(nonNullDateTime, func(b domain.Band) any { return b.UpdatedAt }),
		},
	})

	// Relationship fields are added afterwards because the types refer to
	// each other. Lists are nullable so a failed batch only nulls the field.
	t.user.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.post)),
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, []domain.Post] { return l.PostsByAuthor },
			func(u domain.User) uuid.UUID { return u.ID }),
	})
	t.user.AddFieldConfig("bands", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.band)),
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, []domain.Band] { return l.BandsByOwner },
			func(u domain.User) uuid.UUID { return u.ID }),
	})
	t.post.AddFieldConfig("author", &graphql.Field{
		Type: t.user,
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.User] { return l.UserByID },
			func(p domain.Post) uuid.UUID { return p.AuthorID }),
	})
	t.band.AddFieldConfig("owner", &graphql.Field{
		Type: t.user,
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.User] { return l.UserByID },
			func(b domain.Band) uuid.UUID { return b.OwnerID }),
	})
	t.band.AddFieldConfig("questions", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.question)),
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, []domain.Question] { return l.QuestionsByBand },
			func(b domain.Band) uuid.UUID { return b.ID }),
	})
	t.question.AddFieldConfig("band", &graphql.Field{
		Type: t.band,
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.Band] { return l.BandByID },
			func(q domain.Question) uuid.UUID { return q.BandID }),
	})
	t.question.AddFieldConfig("correctAnswer", &graphql.Field{
		Type: t.answer,
		Resolve: related(
			func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.Answer] { return l.AnswerByID },
			func(q domain.Question) uuid.UUID { return q.CorrectAnswerID }),
	})

	return t
}

// prop builds a field that reads a value off a source of type T.
func prop[T any](typ graphql.Output, get func(T) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			src, err := source[T](p)
			if err != nil {
				return nil, err
			}
			return get(src), nil
		},
	}
}

// related builds a resolver that registers the parent's key with a request
// loader and returns a thunk. graphql-go resolves the thunks only after
// every sibling field has been visited, so the whole level shares a batch.
func related[S any, V any](
	pick func(*Loaders) *dataloader.Loader[uuid.UUID, V],
	key func(S) uuid.UUID,
) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		src, err := source[S](p)
		if err != nil {
			return nil, err
		}
		loaders, err := LoadersFrom(p.Context)
		if err != nil {
			return nil, toGraphQLError(err)
		}
		thunk := pick(loaders).LoadThunk(p.Context, key(src))
		return func() (any, error) {
			v, err := thunk()
			if err != nil {
				return nil, toGraphQLError(err)
			}
			return v, nil
		}, nil
	}
}

// source extracts the parent value, accepting both T and *T.
func source[T any](p graphql.ResolveParams) (T, error) {
	switch v := p.Source.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("gql: unexpected source %T for field %q", p.Source, p.Info.FieldName)
}
