package repository

import (
	"context"

	"planets/internal/planets/model"
)

type PlanetRepository interface {
	// Find the planet with the given public id; returns nil, nil when absent
	FindByID(ctx context.Context, id int) (*model.Planet, error)
	// Count stored planets
	Count(ctx context.Context) (int64, error)
	// Insert planets whose id is not yet stored, returns the number inserted
	SeedPlanets(ctx context.Context, planets []model.Planet) (int64, error)
	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
	// Round-trip to the primary
	Ping(ctx context.Context) error
}
