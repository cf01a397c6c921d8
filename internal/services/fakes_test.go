package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/request_models"
	"tripscout/internal/repositories"
)

// stubCompletion scripts the completion client for service tests.
type stubCompletion struct {
	jsonResponse string
	jsonErr      error
	chatReply    string
	chatErr      error

	jsonCalls   int
	lastPrompt  string
	lastTemp    float32
	lastTTSText string
	ttsErr      error
}

func (s *stubCompletion) CompleteJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.jsonCalls++
	s.lastPrompt = prompt
	s.lastTemp = temperature
	return s.jsonResponse, s.jsonErr
}

func (s *stubCompletion) Chat(ctx context.Context, systemPrompt string, history []request_models.ChatTurn, latest string) (string, error) {
	return s.chatReply, s.chatErr
}

func (s *stubCompletion) AnalyzeImage(ctx context.Context, imageBase64, prompt string) (string, error) {
	return s.jsonResponse, s.jsonErr
}

func (s *stubCompletion) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	s.lastTTSText = text
	return []byte("audio"), s.ttsErr
}

type stubEmbedder struct {
	vector pgvector.Vector
	err    error
	calls  int
}

func (s *stubEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	s.calls++
	return s.vector, s.err
}

func (s *stubEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	out := make([]pgvector.Vector, len(texts))
	for i := range texts {
		out[i] = s.vector
	}
	return out, s.err
}

type fakePackageRepo struct {
	packages []*db_models.TravelPackage
	err      error
}

func (f *fakePackageRepo) ListAllPackages(ctx context.Context) ([]*db_models.TravelPackage, error) {
	return f.packages, f.err
}

func (f *fakePackageRepo) GetPackageByID(ctx context.Context, id uuid.UUID) (*db_models.TravelPackage, error) {
	for _, pkg := range f.packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeVectorRepo struct {
	batches [][]db_models.PackageEmbedding
	hits    []repositories.EmbeddingHit

	upsertErr error
	searchErr error
	deleted   bool
}

func (f *fakeVectorRepo) UpsertBatch(ctx context.Context, rows []db_models.PackageEmbedding) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.batches = append(f.batches, rows)
	return nil
}

func (f *fakeVectorRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, topK int, filter map[string]string) ([]repositories.EmbeddingHit, error) {
	return f.hits, f.searchErr
}

func (f *fakeVectorRepo) DeleteAll(ctx context.Context) error {
	f.deleted = true
	return nil
}

func (f *fakeVectorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	for _, b := range f.batches {
		n += int64(len(b))
	}
	return n, nil
}

type fakeDestinationRepo struct {
	destinations []db_models.Destination
	err          error
}

func (f *fakeDestinationRepo) ListDestinations(ctx context.Context) ([]db_models.Destination, error) {
	return f.destinations, f.err
}

func (f *fakeDestinationRepo) ListDestinationNames(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.destinations))
	for _, d := range f.destinations {
		names = append(names, d.Name)
	}
	return names, nil
}

func (f *fakeDestinationRepo) SlugMap(ctx context.Context) (map[string]string, error) {
	return nil, f.err
}

func testPackage(dest string, price string) *db_models.TravelPackage {
	return &db_models.TravelPackage{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		DestinationName: dest,
		Overview:        "A trip to " + dest,
		PriceMin:        price,
	}
}
