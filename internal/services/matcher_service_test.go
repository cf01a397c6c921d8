package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/request_models"
	"tripscout/pkg/utils"
)

func TestFindMatchesRequiresDestination(t *testing.T) {
	stub := &stubCompletion{}
	svc := NewMatcherService(&fakePackageRepo{}, stub)

	_, err := svc.FindMatches(context.Background(), request_models.FindPackagesRequest{})

	if !errors.Is(err, utils.ErrNoDestinations) {
		t.Fatalf("expected ErrNoDestinations, got %v", err)
	}
	if stub.jsonCalls != 0 {
		t.Error("validation failures must not reach the model")
	}
}

func TestFindMatchesPreFiltersByDestination(t *testing.T) {
	goa := testPackage("Goa", "30000")
	paris := testPackage("Paris", "90000")

	// The model tries to sneak the Paris package in; only Goa was a candidate.
	stub := &stubCompletion{jsonResponse: fmt.Sprintf(
		`{"matches":[{"packageId":"%s","matchScore":90,"matchReason":"fits"},{"packageId":"%s","matchScore":95,"matchReason":"nope"}]}`,
		goa.ID.String(), paris.ID.String())}

	svc := NewMatcherService(&fakePackageRepo{packages: []*db_models.TravelPackage{goa, paris}}, stub)

	results, err := svc.FindMatches(context.Background(), request_models.FindPackagesRequest{
		Destinations: []string{"Goa"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 || results[0].PackageID != goa.ID.String() {
		t.Errorf("expected only the Goa package, got %+v", results)
	}
}

func TestFindMatchesEmptyCandidatesSkipsModel(t *testing.T) {
	stub := &stubCompletion{}
	svc := NewMatcherService(&fakePackageRepo{packages: []*db_models.TravelPackage{testPackage("Paris", "")}}, stub)

	results, err := svc.FindMatches(context.Background(), request_models.FindPackagesRequest{
		Destinations: []string{"Goa"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result, got %+v", results)
	}
	if stub.jsonCalls != 0 {
		t.Error("no candidates means no ranking call")
	}
}

func TestFindMatchesCapsSortsAndClamps(t *testing.T) {
	packages := make([]*db_models.TravelPackage, 5)
	for i := range packages {
		packages[i] = testPackage("Goa", "25000")
	}

	matches := ""
	scores := []int{40, 150, 70, -5, 90}
	for i, pkg := range packages {
		if i > 0 {
			matches += ","
		}
		matches += fmt.Sprintf(`{"packageId":"%s","matchScore":%d,"matchReason":"r"}`, pkg.ID.String(), scores[i])
	}
	stub := &stubCompletion{jsonResponse: `{"matches":[` + matches + `]}`}

	svc := NewMatcherService(&fakePackageRepo{packages: packages}, stub)

	results, err := svc.FindMatches(context.Background(), request_models.FindPackagesRequest{
		Destinations: []string{"Goa"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected at most 3 matches, got %d", len(results))
	}
	if results[0].MatchScore != 100 {
		t.Errorf("scores above 100 must clamp to 100, got %d", results[0].MatchScore)
	}
	for i := 1; i < len(results); i++ {
		if results[i].MatchScore > results[i-1].MatchScore {
			t.Errorf("results not sorted descending: %+v", results)
		}
	}
}

func TestFindMatchesRankingFailuresSurface(t *testing.T) {
	pkg := testPackage("Goa", "25000")

	tests := []struct {
		name string
		stub *stubCompletion
	}{
		{"model error", &stubCompletion{jsonErr: errors.New("rate limited")}},
		{"unparseable response", &stubCompletion{jsonResponse: "here are my thoughts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMatcherService(&fakePackageRepo{packages: []*db_models.TravelPackage{pkg}}, tt.stub)

			_, err := svc.FindMatches(context.Background(), request_models.FindPackagesRequest{
				Destinations: []string{"Goa"},
			})
			if !errors.Is(err, utils.ErrRankingFailed) {
				t.Errorf("expected ErrRankingFailed, got %v", err)
			}
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"rupee string with separators", "₹50,000", 50000},
		{"plain float", 50000.0, 50000},
		{"plain int", 42, 42},
		{"unparseable string", "N/A", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"range string keeps all digits", "30000-50000", 3000050000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePrice(tt.input); got != tt.want {
				t.Errorf("normalizePrice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackagePricePrecedence(t *testing.T) {
	tests := []struct {
		name string
		pkg  *db_models.TravelPackage
		want float64
	}{
		{"priceMin wins", &db_models.TravelPackage{PriceMin: "100", PriceRange: "200", Price: "300", Budget: "400"}, 100},
		{"priceRange next", &db_models.TravelPackage{PriceRange: "200", Price: "300", Budget: "400"}, 200},
		{"price next", &db_models.TravelPackage{Price: "300", Budget: "400"}, 300},
		{"budget last", &db_models.TravelPackage{Budget: "400"}, 400},
		{"nothing set", &db_models.TravelPackage{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packagePrice(tt.pkg); got != tt.want {
				t.Errorf("packagePrice = %v, want %v", got, tt.want)
			}
		})
	}
}
