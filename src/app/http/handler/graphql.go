package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"bandquiz/src/app/http/dto"
	"bandquiz/src/app/http/response"
	"bandquiz/src/app/middleware"
	"bandquiz/src/infra/logger"
)

// GraphQLHandler executes GraphQL operations against a schema.
type GraphQLHandler struct {
	schema graphql.Schema
	log    *slog.Logger
}

func NewGraphQLHandler(schema graphql.Schema, log *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// Post executes the operation in the JSON body.
// POST /graphql
func (h *GraphQLHandler) Post(c *gin.Context) {
	var req dto.GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request body must be JSON with a query field", middleware.GetRequestID(c))
		return
	}
	h.execute(c, req)
}

// Get executes the operation in the query string.
// GET /graphql?query=...&variables=...
func (h *GraphQLHandler) Get(c *gin.Context) {
	var params dto.GraphQLParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "query parameter is required", middleware.GetRequestID(c))
		return
	}
	req, err := params.ToRequest()
	if err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	if op := selectOperation(req.Query, req.OperationName); op != nil && op.Operation != ast.OperationTypeQuery {
		response.MethodNotAllowed(c, "only query operations may be sent with GET; use POST for "+op.Operation+"s",
			middleware.GetRequestID(c), http.MethodPost)
		return
	}
	h.execute(c, req)
}

// selectOperation returns the operation graphql.Do would run for the
// document, or nil when the document does not parse or names no single
// operation. Execution reports those cases itself without running anything.
func selectOperation(query, name string) *ast.OperationDefinition {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return nil
	}
	var selected *ast.OperationDefinition
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if name == "" {
			if selected != nil {
				return nil
			}
			selected = op
			continue
		}
		if op.Name != nil && op.Name.Value == name {
			return op
		}
	}
	return selected
}

// execute always answers 200; GraphQL errors travel in the body.
func (h *GraphQLHandler) execute(c *gin.Context, req dto.GraphQLRequest) {
	ctx := c.Request.Context()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	if result.HasErrors() {
		log := logger.FromContext(ctx, h.log)
		for _, e := range result.Errors {
			log.Warn("graphql error",
				"operation", req.OperationName,
				"message", e.Message,
				"path", e.Path,
			)
		}
	}
	c.JSON(http.StatusOK, result)
}
