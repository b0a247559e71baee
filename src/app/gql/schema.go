// Package gql exposes the domain over GraphQL using graphql-go.
//
// Root fields call the use case services directly. Relationship fields go
// through the request scoped Loaders found on the context, so a query that
// walks a list of bands issues one question query for all of them.
package gql

import (
	"github.com/graphql-go/graphql"

	"bandquiz/src/core/usecase"
)

// APIVersion is reported by the apiVersion query.
const APIVersion = "1.0"

// Services are the use cases the schema resolves against.
type Services struct {
	Users     *usecase.UserService
	Posts     *usecase.PostService
	Answers   *usecase.AnswerService
	Questions *usecase.QuestionService
	Bands     *usecase.BandService
}

// NewSchema builds the executable schema.
func NewSchema(svc Services) (graphql.Schema, error) {
	t := newObjectTypes()
	r := &resolver{svc: svc}

	idArgs := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: nonNullUUID},
	}
	listOf := func(o *graphql.Object) graphql.Output {
		return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o)))
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"apiVersion": &graphql.Field{
				Type:    nonNullString,
				Resolve: func(graphql.ResolveParams) (any, error) { return APIVersion, nil },
			},
			"users":     &graphql.Field{Type: listOf(t.user), Resolve: r.users},
			"user":      &graphql.Field{Type: t.user, Args: idArgs, Resolve: r.user},
			"posts":     &graphql.Field{Type: listOf(t.post), Resolve: r.posts},
			"post":      &graphql.Field{Type: t.post, Args: idArgs, Resolve: r.post},
			"answers":   &graphql.Field{Type: listOf(t.answer), Resolve: r.answers},
			"answer":    &graphql.Field{Type: t.answer, Args: idArgs, Resolve: r.answer},
			"questions": &graphql.Field{Type: listOf(t.question), Resolve: r.questions},
			"question":  &graphql.Field{Type: t.question, Args: idArgs, Resolve: r.question},
			"bands":     &graphql.Field{Type: listOf(t.band), Resolve: r.bands},
			"band":      &graphql.Field{Type: t.band, Args: idArgs, Resolve: r.band},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type:    graphql.NewNonNull(t.user),
				Args:    inputArgs(createUserInput),
				Resolve: r.createUser,
			},
			"createPost": &graphql.Field{
				Type:    graphql.NewNonNull(t.post),
				Args:    inputArgs(createPostInput),
				Resolve: r.createPost,
			},
			"createAnswer": &graphql.Field{
				Type:    graphql.NewNonNull(t.answer),
				Args:    inputArgs(createAnswerInput),
				Resolve: r.createAnswer,
			},
			"createQuestion": &graphql.Field{
				Type:    graphql.NewNonNull(t.question),
				Args:    inputArgs(createQuestionInput),
				Resolve: r.createQuestion,
			},
			"createBand": &graphql.Field{
				Type:    graphql.NewNonNull(t.band),
				Args:    inputArgs(createBandInput),
				Resolve: r.createBand,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func inputArgs(in *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(in)},
	}
}

func inputFields(fields map[string]graphql.Input) graphql.InputObjectConfigFieldMap {
	out := make(graphql.InputObjectConfigFieldMap, len(fields))
	for name, typ := range fields {
		out[name] = &graphql.InputObjectFieldConfig{Type: typ}
	}
	return out
}

var (
	createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: inputFields(map[string]graphql.Input{
			"username": nonNullString,
			"email":    nonNullString,
			"password": nonNullString,
			"bio":      graphql.String,
			"image":    graphql.String,
		}),
	})
	createPostInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: inputFields(map[string]graphql.Input{
			"authorId":    nonNullUUID,
			"slug":        nonNullString,
			"title":       nonNullString,
			"description": graphql.String,
			"body":        nonNullString,
		}),
	})
	createAnswerInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateAnswerInput",
		Fields: inputFields(map[string]graphql.Input{
			"content": nonNullString,
		}),
	})
	createQuestionInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateQuestionInput",
		Fields: inputFields(map[string]graphql.Input{
			"content":         nonNullString,
			"bandId":          nonNullUUID,
			"correctAnswerId": nonNullUUID,
		}),
	})
	createBandInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBandInput",
		Fields: inputFields(map[string]graphql.Input{
			"name":    nonNullString,
			"ownerId": nonNullUUID,
		}),
	})
)
