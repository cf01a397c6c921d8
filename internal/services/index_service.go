package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

const (
	upsertBatchSize = 100
	vectorDimension = 1536
	overviewMaxLen  = 500
)

// PackageVector pairs a catalog package with its embedding for bulk writes.
type PackageVector struct {
	Pkg    *db_models.TravelPackage
	Vector pgvector.Vector
}

type IndexServiceInterface interface {
	UpsertOne(ctx context.Context, pkg *db_models.TravelPackage, vector pgvector.Vector) error
	// UpsertMany writes pairs in batches of 100. Zero-length vectors are
	// filtered out of each batch; a batch left empty by filtering is
	// skipped with a warning. The first failed write aborts the whole
	// operation — there is no partial-success continuation across batches.
	UpsertMany(ctx context.Context, pairs []PackageVector) error
	Search(ctx context.Context, queryText string, topK int, filter map[string]string) ([]response_models.SearchHit, error)
	// EmbedAllPackages embeds the full catalog and upserts it. Per-package
	// embedding failures are accumulated and reported, not fatal; this is
	// the one flow where partial failure is a first-class outcome.
	EmbedAllPackages(ctx context.Context, clearExisting bool) (*response_models.EmbedPackagesResult, error)
	DeleteAll(ctx context.Context) error
	Stats(ctx context.Context) (response_models.IndexStats, error)
}

type IndexService struct {
	vectorRepo  repositories.PackageVectorRepository
	packageRepo repositories.PackageRepository
	embedder    utils.EmbeddingClientInterface
}

func NewIndexService(
	vectorRepo repositories.PackageVectorRepository,
	packageRepo repositories.PackageRepository,
	embedder utils.EmbeddingClientInterface,
) IndexServiceInterface {
	return &IndexService{
		vectorRepo:  vectorRepo,
		packageRepo: packageRepo,
		embedder:    embedder,
	}
}

func (s *IndexService) UpsertOne(ctx context.Context, pkg *db_models.TravelPackage, vector pgvector.Vector) error {
	row := buildEmbeddingRow(pkg, vector)
	return s.vectorRepo.UpsertBatch(ctx, []db_models.PackageEmbedding{row})
}

func (s *IndexService) UpsertMany(ctx context.Context, pairs []PackageVector) error {
	for start := 0; start < len(pairs); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(pairs) {
			end = len(pairs)
		}

		batch := make([]db_models.PackageEmbedding, 0, end-start)
		for _, pair := range pairs[start:end] {
			if len(pair.Vector.Slice()) == 0 {
				log.Printf("index: dropping zero-length vector for package %q", packageVectorID(pair.Pkg))
				continue
			}
			batch = append(batch, buildEmbeddingRow(pair.Pkg, pair.Vector))
		}

		if len(batch) == 0 {
			log.Printf("index: batch %d-%d empty after filtering, skipping", start, end)
			continue
		}

		if err := s.vectorRepo.UpsertBatch(ctx, batch); err != nil {
			return fmt.Errorf("upsert batch starting at %d: %w", start, err)
		}
	}
	return nil
}

func (s *IndexService) Search(ctx context.Context, queryText string, topK int, filter map[string]string) ([]response_models.SearchHit, error) {
	vector, err := s.embedder.GetEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.vectorRepo.SearchByVector(ctx, vector, topK, filter)
	if err != nil {
		return nil, err
	}

	results := make([]response_models.SearchHit, 0, len(hits))
	for _, h := range hits {
		results = append(results, response_models.SearchHit{
			PackageID:       h.PackageID,
			DestinationName: h.DestinationName,
			DestinationID:   h.DestinationID,
			Duration:        h.Duration,
			PriceRange:      h.PriceRange,
			StarCategory:    h.StarCategory,
			TravelType:      h.TravelType,
			PrimaryImage:    h.PrimaryImage,
			Overview:        h.Overview,
			Score:           h.Similarity,
		})
	}
	return results, nil
}

func (s *IndexService) EmbedAllPackages(ctx context.Context, clearExisting bool) (*response_models.EmbedPackagesResult, error) {
	packages, err := s.packageRepo.ListAllPackages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if clearExisting {
		if err := s.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("clear index: %w", err)
		}
	}

	result := &response_models.EmbedPackagesResult{TotalPackages: len(packages)}

	var pairs []PackageVector
	for _, pkg := range packages {
		text := utils.FormatPackageForEmbedding(pkg)
		if text == "" {
			result.Skipped++
			continue
		}

		vector, err := s.embedder.GetEmbedding(ctx, text)
		if err != nil {
			// No key configured means every package would fail identically;
			// bail out instead of producing a wall of errors.
			if errors.Is(err, utils.ErrIndexNotConfigured) {
				return nil, err
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", pkg.ID.String(), err))
			continue
		}
		pairs = append(pairs, PackageVector{Pkg: pkg, Vector: vector})
	}

	if err := s.UpsertMany(ctx, pairs); err != nil {
		return nil, err
	}
	result.PackagesProcessed = len(pairs)
	result.Success = true

	if stats, err := s.Stats(ctx); err == nil {
		result.IndexStats = stats
	}
	return result, nil
}

func (s *IndexService) DeleteAll(ctx context.Context) error {
	return s.vectorRepo.DeleteAll(ctx)
}

func (s *IndexService) Stats(ctx context.Context) (response_models.IndexStats, error) {
	count, err := s.vectorRepo.Count(ctx)
	if err != nil {
		return response_models.IndexStats{}, err
	}
	return response_models.IndexStats{TotalVectors: count, Dimension: vectorDimension}, nil
}

// packageVectorID picks the index id for a package: its own id, else its
// destination id, else empty. Empty ids are accepted (legacy behavior) but
// logged so bad catalog rows are visible.
func packageVectorID(pkg *db_models.TravelPackage) string {
	if pkg.ID != uuid.Nil {
		return pkg.ID.String()
	}
	if pkg.DestinationID != uuid.Nil {
		return pkg.DestinationID.String()
	}
	log.Printf("index: package with no usable id (destination %q), storing with empty id", pkg.DestinationName)
	return ""
}

func buildEmbeddingRow(pkg *db_models.TravelPackage, vector pgvector.Vector) db_models.PackageEmbedding {
	overview := pkg.Overview
	if len(overview) > overviewMaxLen {
		overview = overview[:overviewMaxLen]
	}

	priceRange := pkg.PriceRange
	if priceRange == "" {
		priceRange = pkg.Price
	}

	destinationID := ""
	if pkg.DestinationID != uuid.Nil {
		destinationID = pkg.DestinationID.String()
	}

	return db_models.PackageEmbedding{
		PackageID:       packageVectorID(pkg),
		DestinationName: pkg.DestinationName,
		DestinationID:   destinationID,
		Duration:        fmt.Sprintf("%dD/%dN", pkg.DurationDays, pkg.DurationNights),
		PriceRange:      priceRange,
		StarCategory:    pkg.StarCategory,
		TravelType:      pkg.TravelType,
		PrimaryImage:    pkg.PrimaryImage,
		Overview:        overview,
		Embedding:       vector,
	}
}
