package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripscout/internal/models/db_models"
)

type DestinationRepository interface {
	ListDestinations(ctx context.Context) ([]db_models.Destination, error)
	// ListDestinationNames returns the catalog in stable iteration order
	// (insertion order by created_at). Normalization relies on that order
	// for its first-match rule.
	ListDestinationNames(ctx context.Context) ([]string, error)
	// SlugMap returns every destination's name and id keyed to its slug,
	// feeding the process-wide slug cache.
	SlugMap(ctx context.Context) (map[string]string, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) ListDestinations(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) ListDestinationNames(ctx context.Context) ([]string, error) {
	destinations, err := r.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, d.Name)
	}
	return names, nil
}

func (r *destinationRepository) SlugMap(ctx context.Context) (map[string]string, error) {
	destinations, err := r.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make(map[string]string, len(destinations)*2)
	for _, d := range destinations {
		slugs[d.Name] = d.Slug
		slugs[d.ID.String()] = d.Slug
	}
	return slugs, nil
}
