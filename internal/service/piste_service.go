package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type pisteRepository interface {
	Create(ctx context.Context, p *models.Piste) error
	FindByID(ctx context.Context, numPiste int64) (*models.Piste, error)
	List(ctx context.Context) ([]models.Piste, error)
	Delete(ctx context.Context, numPiste int64) error
}

// PisteService manages runs.
type PisteService struct {
	repo      pisteRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewPisteService(repo pisteRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PisteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PisteService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func (s *PisteService) Add(ctx context.Context, req dto.PisteRequest) (*models.Piste, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid piste payload")
	}
	piste := &models.Piste{NamePiste: req.NamePiste, Color: req.Color, Length: req.Length, Slope: req.Slope}
	if err := s.repo.Create(ctx, piste); err != nil {
		return nil, internalError(err, "failed to create piste")
	}
	s.cache.Invalidate(ctx, cacheKeyPistes)
	return piste, nil
}

// Get returns the piste and whether it exists.
func (s *PisteService) Get(ctx context.Context, numPiste int64) (*models.Piste, bool, error) {
	piste, err := s.repo.FindByID(ctx, numPiste)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "failed to load piste")
	}
	return piste, true, nil
}

// List returns every piste and whether the result came from cache.
func (s *PisteService) List(ctx context.Context) ([]models.Piste, bool, error) {
	var cached []models.Piste
	if s.cache.Get(ctx, cacheKeyPistes, &cached) {
		return cached, true, nil
	}
	pistes, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, internalError(err, "failed to list pistes")
	}
	s.cache.Set(ctx, cacheKeyPistes, pistes)
	return pistes, false, nil
}

func (s *PisteService) Delete(ctx context.Context, numPiste int64) error {
	if err := s.repo.Delete(ctx, numPiste); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "piste not found")
		}
		return internalError(err, "failed to delete piste")
	}
	s.cache.Invalidate(ctx, cacheKeyPistes)
	return nil
}
