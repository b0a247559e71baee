package gql

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"bandquiz/src/core/domain"
)

type resolver struct {
	svc Services
}

func (r *resolver) users(p graphql.ResolveParams) (any, error) {
	users, err := r.svc.Users.List(p.Context)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	primeUsers(p, users)
	return users, nil
}

func (r *resolver) user(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Users.Get(p.Context, uuidArg(p.Args, "id")))
}

func (r *resolver) posts(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Posts.List(p.Context))
}

func (r *resolver) post(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Posts.Get(p.Context, uuidArg(p.Args, "id")))
}

func (r *resolver) answers(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Answers.List(p.Context))
}

func (r *resolver) answer(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Answers.Get(p.Context, uuidArg(p.Args, "id")))
}

func (r *resolver) questions(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Questions.List(p.Context))
}

func (r *resolver) question(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Questions.Get(p.Context, uuidArg(p.Args, "id")))
}

func (r *resolver) bands(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Bands.List(p.Context))
}

func (r *resolver) band(p graphql.ResolveParams) (any, error) {
	return result(r.svc.Bands.Get(p.Context, uuidArg(p.Args, "id")))
}

func (r *resolver) createUser(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args)
	return result(r.svc.Users.Create(p.Context, domain.CreateUser{
		Username: stringField(in, "username"),
		Email:    stringField(in, "email"),
		Password: stringField(in, "password"),
		Bio:      optionalString(in, "bio"),
		Image:    optionalString(in, "image"),
	}))
}

func (r *resolver) createPost(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args)
	return result(r.svc.Posts.Create(p.Context, domain.CreatePost{
		AuthorID:    uuidArg(in, "authorId"),
		Slug:        stringField(in, "slug"),
		Title:       stringField(in, "title"),
		Description: stringField(in, "description"),
		Body:        stringField(in, "body"),
	}))
}

func (r *resolver) createAnswer(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args)
	return result(r.svc.Answers.Create(p.Context, domain.CreateAnswer{
		Content: stringField(in, "content"),
	}))
}

func (r *resolver) createQuestion(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args)
	return result(r.svc.Questions.Create(p.Context, domain.CreateQuestion{
		Content:         stringField(in, "content"),
		BandID:          uuidArg(in, "bandId"),
		CorrectAnswerID: uuidArg(in, "correctAnswerId"),
	}))
}

func (r *resolver) createBand(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args)
	return result(r.svc.Bands.Create(p.Context, domain.CreateBand{
		Name:    stringField(in, "name"),
		OwnerID: uuidArg(in, "ownerId"),
	}))
}

// primeUsers seeds the user loader with rows the root query already read,
// so author and owner fields below it need no extra fetch.
func primeUsers(p graphql.ResolveParams, users []domain.User) {
	loaders, err := LoadersFrom(p.Context)
	if err != nil {
		return
	}
	for i := range users {
		u := users[i]
		loaders.UserByID.Prime(u.ID, &u)
	}
}

// result maps a service error onto a GraphQL error.
func result(v any, err error) (any, error) {
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return v, nil
}

func inputArg(args map[string]any) map[string]any {
	in, _ := args["input"].(map[string]any)
	return in
}

func uuidArg(args map[string]any, name string) uuid.UUID {
	id, _ := args[name].(uuid.UUID)
	return id
}

func stringField(in map[string]any, name string) string {
	s, _ := in[name].(string)
	return s
}

func optionalString(in map[string]any, name string) *string {
	s, ok := in[name].(string)
	if !ok {
		return nil
	}
	return &s
}
