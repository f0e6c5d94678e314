package service

import (
	"context"
	"errors"
	"fmt"

	"planets/internal/planets/metrics"
	"planets/internal/planets/model"
	"planets/internal/planets/repository"
	"planets/internal/planets/util"
)

var (
	ErrPlanetNotFound   = errors.New("planet not found")
	ErrStoreUnavailable = errors.New("planet store unavailable")
)

type PlanetService interface {
	GetPlanet(ctx context.Context, id int) (*model.Planet, error)
	Bootstrap(ctx context.Context, seed bool) (*BootstrapResult, error)
}

// BootstrapResult describes what startup did to the collection.
type BootstrapResult struct {
	Connected bool
	Existing  int64
	Seeded    bool
	Inserted  int64
}

type Service struct {
	Repo    repository.PlanetRepository
	Catalog []model.Planet
}

func NewService(repo repository.PlanetRepository) *Service {
	return &Service{Repo: repo, Catalog: model.SeedCatalog()}
}

func (s *Service) GetPlanet(ctx context.Context, id int) (*model.Planet, error) {
	planet, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		metrics.RecordLookup(model.LookupError)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if planet == nil {
		metrics.RecordLookup(model.LookupNotFound)
		return nil, ErrPlanetNotFound
	}

	metrics.RecordLookup(model.LookupFound)
	return planet, nil
}

// Bootstrap checks connectivity, ensures indexes and, when seed is set, fills an
// empty collection with the catalog. A non-empty collection is never touched.
func (s *Service) Bootstrap(ctx context.Context, seed bool) (*BootstrapResult, error) {
	logger := util.GetLogger()
	result := &BootstrapResult{}

	if err := s.Repo.Ping(ctx); err != nil {
		return result, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	result.Connected = true

	// Non-fatal: lookups work without the index, only seeding races lose protection.
	if err := s.Repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	if !seed {
		return result, nil
	}

	count, err := s.Repo.Count(ctx)
	if err != nil {
		return result, err
	}
	result.Existing = count
	if count > 0 {
		logger.Debug("Planet collection already populated, skipping seed", "count", count)
		return result, nil
	}

	if err := model.ValidateCatalog(s.Catalog); err != nil {
		return result, fmt.Errorf("invalid seed catalog: %w", err)
	}

	inserted, err := s.Repo.SeedPlanets(ctx, s.Catalog)
	result.Inserted = inserted
	if err != nil {
		return result, err
	}
	result.Seeded = true

	logger.Info("Seeded planet collection", "inserted", inserted, "catalog_size", len(s.Catalog))
	return result, nil
}
