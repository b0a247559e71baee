package repo

import (
	"context"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
)

const bandColumns = `id, name, owner_id, created_at, updated_at`

func (r *PostgresRepository) GetBand(ctx context.Context, id uuid.UUID) (*domain.Band, error) {
	const q = `SELECT ` + bandColumns + ` FROM bands WHERE id = $1`
	return queryOne[domain.Band](ctx, r, "get_band", "band", q, id)
}

func (r *PostgresRepository) ListBands(ctx context.Context) ([]domain.Band, error) {
	const q = `SELECT ` + bandColumns + ` FROM bands ORDER BY created_at`
	return queryAll[domain.Band](ctx, r, "list_bands", q)
}

func (r *PostgresRepository) ListBandsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Band, error) {
	const q = `SELECT ` + bandColumns + ` FROM bands WHERE id = ANY($1)`
	return queryAll[domain.Band](ctx, r, "list_bands_by_ids", q, ids)
}

func (r *PostgresRepository) ListBandsByOwnerIDs(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.Band, error) {
	const q = `SELECT ` + bandColumns + ` FROM bands WHERE owner_id = ANY($1) ORDER BY created_at`
	return queryAll[domain.Band](ctx, r, "list_bands_by_owner_ids", q, ownerIDs)
}

func (r *PostgresRepository) CreateBand(ctx context.Context, input domain.CreateBand) (*domain.Band, error) {
	const q = `
		INSERT INTO bands (name, owner_id)
		VALUES ($1, $2)
		RETURNING ` + bandColumns
	b, err := queryOne[domain.Band](ctx, r, "create_band", "band", q, input.Name, input.OwnerID)
	if err != nil {
		return nil, mapWriteError(err, "band already exists", map[string]string{
			"bands_owner_id_fkey": "owner_id",
		})
	}
	return b, nil
}
