package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pgvector/pgvector-go"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/services"
)

type recordingIndexService struct {
	embedCalls int
	statsCalls int
	lastClear  bool
}

func (r *recordingIndexService) UpsertOne(ctx context.Context, pkg *db_models.TravelPackage, vector pgvector.Vector) error {
	return nil
}

func (r *recordingIndexService) UpsertMany(ctx context.Context, pairs []services.PackageVector) error {
	return nil
}

func (r *recordingIndexService) Search(ctx context.Context, queryText string, topK int, filter map[string]string) ([]response_models.SearchHit, error) {
	return nil, nil
}

func (r *recordingIndexService) EmbedAllPackages(ctx context.Context, clearExisting bool) (*response_models.EmbedPackagesResult, error) {
	r.embedCalls++
	r.lastClear = clearExisting
	return &response_models.EmbedPackagesResult{Success: true}, nil
}

func (r *recordingIndexService) DeleteAll(ctx context.Context) error {
	return nil
}

func (r *recordingIndexService) Stats(ctx context.Context) (response_models.IndexStats, error) {
	r.statsCalls++
	return response_models.IndexStats{TotalVectors: 42, Dimension: 1536}, nil
}

func newIndexTestRouter(svc services.IndexServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewIndexController(svc)
	r := gin.New()
	r.POST("/embed-packages", ctrl.EmbedPackages)
	r.GET("/embed-packages", ctrl.IndexStats)
	return r
}

func TestEmbedPackagesGETIsReadOnly(t *testing.T) {
	svc := &recordingIndexService{}
	router := newIndexTestRouter(svc)

	// Even with clearExisting in the query, a GET must never touch the index.
	req := httptest.NewRequest(http.MethodGet, "/embed-packages?clearExisting=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.embedCalls != 0 {
		t.Errorf("GET triggered %d embedding runs, want 0", svc.embedCalls)
	}
	if svc.statsCalls != 1 {
		t.Errorf("GET made %d stats calls, want 1", svc.statsCalls)
	}

	var stats response_models.IndexStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("response is not an IndexStats payload: %v", err)
	}
	if stats.TotalVectors != 42 || stats.Dimension != 1536 {
		t.Errorf("unexpected stats payload: %+v", stats)
	}
}

func TestEmbedPackagesPOSTRunsEmbedding(t *testing.T) {
	svc := &recordingIndexService{}
	router := newIndexTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/embed-packages", strings.NewReader(`{"clearExisting":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.embedCalls != 1 || !svc.lastClear {
		t.Errorf("expected one embedding run with clearExisting=true, got calls=%d clear=%v",
			svc.embedCalls, svc.lastClear)
	}
}
