package gql

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// UUID is the scalar used for every entity identifier.
var UUID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "An RFC 4122 UUID in its canonical string form.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case uuid.UUID:
			return v.String()
		case *uuid.UUID:
			if v == nil {
				return nil
			}
			return v.String()
		default:
			return nil
		}
	},
	ParseValue: func(value any) any {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseUUID(s)
	},
	ParseLiteral: func(valueAST ast.Value) any {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseUUID(s.Value)
	},
})

// parseUUID returns nil for malformed input so graphql-go reports the
// argument as invalid.
func parseUUID(s string) any {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return id
}
