package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planets/internal/planets/metrics"
	"planets/internal/planets/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planetIDIndex = "uniq_planet_id"

// Server error codes reported for unique index violations.
var duplicateKeyCodes = map[int]bool{11000: true, 11001: true, 12582: true}

type MongoPlanetRepository struct {
	Planets *mongo.Collection
	Client  *mongo.Client
}

func NewMongoPlanetRepository(db *mongo.Database, collectionName string) *MongoPlanetRepository {
	return &MongoPlanetRepository{
		Planets: db.Collection(collectionName),
		Client:  db.Client(),
	}
}

func (r *MongoPlanetRepository) EnsureIndexes(ctx context.Context) error {
	// One document per public id, so concurrent seeding cannot duplicate.
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(planetIDIndex),
	}

	defer metrics.ObserveStoreQuery("ensure_indexes", time.Now())
	if _, err := r.Planets.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create index %s: %w", planetIDIndex, err)
	}
	return nil
}

func (r *MongoPlanetRepository) FindByID(ctx context.Context, id int) (*model.Planet, error) {
	defer metrics.ObserveStoreQuery("find_one", time.Now())

	var result model.Planet
	err := r.Planets.FindOne(ctx, bson.M{"id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find planet %d: %w", id, err)
	}
	return &result, nil
}

func (r *MongoPlanetRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveStoreQuery("count", time.Now())

	n, err := r.Planets.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count planets: %w", err)
	}
	return n, nil
}

func (r *MongoPlanetRepository) SeedPlanets(ctx context.Context, planets []model.Planet) (int64, error) {
	if len(planets) == 0 {
		return 0, nil
	}

	writeModels := make([]mongo.WriteModel, 0, len(planets))
	for _, p := range planets {
		doc := bson.M{
			"id":   p.ID,
			"name": p.Name,
		}
		if p.Description != "" {
			doc["description"] = p.Description
		}
		if p.Image != "" {
			doc["image"] = p.Image
		}
		if p.Velocity != "" {
			doc["velocity"] = p.Velocity
		}
		if p.Distance != "" {
			doc["distance"] = p.Distance
		}

		// $setOnInsert leaves planets that already exist untouched.
		writeModels = append(writeModels, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": p.ID}).
			SetUpdate(bson.M{"$setOnInsert": doc}).
			SetUpsert(true))
	}

	defer metrics.ObserveStoreQuery("seed", time.Now())

	// Ordered: false so one lost race does not stop the rest
	opts := options.BulkWrite().SetOrdered(false)
	res, err := r.Planets.BulkWrite(ctx, writeModels, opts)

	var inserted int64
	if res != nil {
		inserted = res.UpsertedCount
	}

	if err != nil {
		var bulkErr mongo.BulkWriteException
		if !errors.As(err, &bulkErr) || bulkErr.WriteConcernError != nil {
			return inserted, fmt.Errorf("seed planets: %w", err)
		}
		for _, we := range bulkErr.WriteErrors {
			// Another instance inserted the same id first.
			if !duplicateKeyCodes[we.Code] {
				return inserted, fmt.Errorf("seed planet at index %d: %w", we.Index, err)
			}
		}
	}

	return inserted, nil
}

func (r *MongoPlanetRepository) Ping(ctx context.Context) error {
	defer metrics.ObserveStoreQuery("ping", time.Now())
	return r.Client.Ping(ctx, nil)
}
