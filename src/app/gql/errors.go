package gql

import (
	"errors"

	"bandquiz/src/core/domain"
	"bandquiz/src/infra/dataloader"
)

// Error codes reported in the "extensions.code" field of GraphQL errors.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeFetch      = "FETCH_FAILED"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error is a resolver error with a client facing message and code.
// It implements graphql-go's ExtendedError.
type Error struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Extensions() map[string]any {
	ext := map[string]any{"code": e.Code}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

// toGraphQLError maps err onto an *Error. Messages of domain errors are
// passed through; anything else is reported without its cause.
func toGraphQLError(err error) error {
	if err == nil {
		return nil
	}
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		e := &Error{Message: domErr.Message, Field: domErr.Field, Err: err}
		switch {
		case domain.IsNotFound(err):
			e.Code = CodeNotFound
			e.Message = domErr.Message + " not found"
		case domain.IsValidationError(err):
			e.Code = CodeValidation
		case domain.IsAlreadyExists(err), domain.IsConflict(err):
			e.Code = CodeConflict
		default:
			e.Code = CodeInternal
		}
		return e
	}

	if dataloader.IsFetchError(err) {
		return &Error{Code: CodeFetch, Message: "failed to load related records", Err: err}
	}
	return &Error{Code: CodeInternal, Message: "internal error", Err: err}
}
