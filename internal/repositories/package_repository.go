package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripscout/internal/models/db_models"
)

type PackageRepository interface {
	ListAllPackages(ctx context.Context) ([]*db_models.TravelPackage, error)
	GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.TravelPackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) ListAllPackages(ctx context.Context) ([]*db_models.TravelPackage, error) {
	var packages []*db_models.TravelPackage
	if err := r.db.WithContext(ctx).Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.TravelPackage, error) {
	var pkg db_models.TravelPackage
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}
