package gql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandquiz/src/core/domain"
	"bandquiz/src/infra/dataloader"
)

func TestToGraphQLError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
		field   string
	}{
		{"not found", domain.NewNotFoundError("question"), CodeNotFound, "question not found", ""},
		{"validation", domain.NewValidationError("band_id", "is required"), CodeValidation, "is required", "band_id"},
		{"already exists", fmt.Errorf("create: %w", domain.NewAlreadyExistsError("band already exists")), CodeConflict, "band already exists", ""},
		{"conflict", domain.NewConflictError("stale"), CodeConflict, "stale", ""},
		{"fetch", &dataloader.FetchError{Keys: 3, Err: errors.New("password=secret")}, CodeFetch, "failed to load related records", ""},
		{"other", errors.New("dial tcp: refused"), CodeInternal, "internal error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toGraphQLError(tt.err)

			var gqlErr *Error
			require.ErrorAs(t, err, &gqlErr)
			assert.Equal(t, tt.code, gqlErr.Extensions()["code"])
			assert.Equal(t, tt.message, gqlErr.Error())
			if tt.field != "" {
				assert.Equal(t, tt.field, gqlErr.Extensions()["field"])
			} else {
				assert.NotContains(t, gqlErr.Extensions(), "field")
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestToGraphQLErrorIsIdempotent(t *testing.T) {
	assert.Nil(t, toGraphQLError(nil))

	first := toGraphQLError(domain.NewNotFoundError("band"))
	assert.Same(t, first, toGraphQLError(first))
}
