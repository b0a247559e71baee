package dto

import (
	"encoding/json"
	"fmt"
)

// GraphQLRequest is the JSON body of POST /graphql.
type GraphQLRequest struct {
	Query         string         `json:"query" binding:"required"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// GraphQLParams is the query string form of GET /graphql. Variables are a
// JSON encoded object.
type GraphQLParams struct {
	Query         string `form:"query" binding:"required"`
	OperationName string `form:"operationName"`
	Variables     string `form:"variables"`
}

// ToRequest decodes the variables and returns the equivalent request.
func (p GraphQLParams) ToRequest() (GraphQLRequest, error) {
	req := GraphQLRequest{Query: p.Query, OperationName: p.OperationName}
	if p.Variables == "" {
		return req, nil
	}
	if err := json.Unmarshal([]byte(p.Variables), &req.Variables); err != nil {
		return GraphQLRequest{}, fmt.Errorf("variables must be a JSON object: %w", err)
	}
	return req, nil
}
