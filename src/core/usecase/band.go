package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"bandquiz/src/core/domain"
	"bandquiz/src/core/ports"
)

// BandService handles bands.
type BandService struct {
	repo     ports.BandRepository
	validate *Validator
	log      *slog.Logger
}

func NewBandService(repo ports.BandRepository, validate *Validator, log *slog.Logger) *BandService {
	return &BandService{repo: repo, validate: validate, log: log}
}

func (s *BandService) Get(ctx context.Context, id uuid.UUID) (*domain.Band, error) {
	return s.repo.GetBand(ctx, id)
}

func (s *BandService) List(ctx context.Context) ([]domain.Band, error) {
	return s.repo.ListBands(ctx)
}

func (s *BandService) Create(ctx context.Context, input domain.CreateBand) (*domain.Band, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	band, err := s.repo.CreateBand(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info("band created", "band_id", band.ID, "owner_id", band.OwnerID)
	return band, nil
}
