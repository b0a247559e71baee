package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandquiz/src/core/domain"
)

func TestMapWriteError(t *testing.T) {
	parents := map[string]string{"questions_band_id_fkey": "band_id"}

	t.Run("unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})
		got := mapWriteError(err, "band already exists", parents)
		assert.True(t, domain.IsAlreadyExists(got))
		assert.Contains(t, got.Error(), "band already exists")
	})

	t.Run("known foreign key", func(t *testing.T) {
		err := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "questions_band_id_fkey"}
		got := mapWriteError(err, "", parents)
		require.True(t, domain.IsValidationError(got))
		var de *domain.DomainError
		require.ErrorAs(t, got, &de)
		assert.Equal(t, "band_id", de.Field)
	})

	t.Run("unknown foreign key", func(t *testing.T) {
		err := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "other"}
		assert.True(t, domain.IsValidationError(mapWriteError(err, "", parents)))
	})

	t.Run("other error passes through", func(t *testing.T) {
		boom := errors.New("connection reset")
		assert.Same(t, boom, mapWriteError(boom, "", parents))
	})
}
