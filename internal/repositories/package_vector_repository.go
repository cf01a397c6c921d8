package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripscout/internal/models/db_models"
)

// EmbeddingHit is one nearest-neighbor row: the stored metadata snapshot plus
// the cosine similarity computed by Postgres.
type EmbeddingHit struct {
	db_models.PackageEmbedding
	Similarity float64
}

// PackageVectorRepository is the raw storage port of the similarity index.
// Batching, zero-vector filtering and query embedding live a layer up in the
// index service; this interface only moves rows.
type PackageVectorRepository interface {
	UpsertBatch(ctx context.Context, rows []db_models.PackageEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, topK int, filter map[string]string) ([]EmbeddingHit, error)
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// filterColumns whitelists the metadata fields a search filter may reference.
// Unknown keys are dropped silently rather than turned into SQL.
var filterColumns = map[string]string{
	"packageId":       "package_id",
	"destinationName": "destination_name",
	"destinationId":   "destination_id",
	"duration":        "duration",
	"priceRange":      "price_range",
	"starCategory":    "star_category",
	"travelType":      "travel_type",
}

type packageVectorRepository struct {
	db *gorm.DB
}

func NewPackageVectorRepository(db *gorm.DB) PackageVectorRepository {
	return &packageVectorRepository{db: db}
}

func (r *packageVectorRepository) UpsertBatch(ctx context.Context, rows []db_models.PackageEmbedding) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "package_id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
}

func (r *packageVectorRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, topK int, filter map[string]string) ([]EmbeddingHit, error) {
	vecStr := vector.String()

	sql := "SELECT *, 1 - (embedding <=> ?) AS similarity FROM package_embeddings"
	args := []interface{}{vecStr}

	// Sort filter keys so the generated SQL is deterministic.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		if _, ok := filterColumns[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var conds []string
	for _, k := range keys {
		conds = append(conds, filterColumns[k]+" = ?")
		args = append(args, filter[k])
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}

	sql += " ORDER BY embedding <=> ? LIMIT ?"
	args = append(args, vecStr, topK)

	var hits []EmbeddingHit
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&hits).Error; err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	return hits, nil
}

func (r *packageVectorRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM package_embeddings").Error
}

func (r *packageVectorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.PackageEmbedding{}).Count(&count).Error
	return count, err
}
