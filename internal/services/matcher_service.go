package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

const maxRankedMatches = 3

type MatcherServiceInterface interface {
	// FindMatches ranks catalog packages against wizard-collected
	// preferences. Requires at least one destination; unlike extraction
	// and classification this path fails loudly — a recommendation that
	// silently defaulted to "everything" would look arbitrary to the user.
	FindMatches(ctx context.Context, prefs request_models.FindPackagesRequest) ([]response_models.MatchResult, error)
}

type MatcherService struct {
	packageRepo repositories.PackageRepository
	completion  utils.CompletionClientInterface
}

func NewMatcherService(packageRepo repositories.PackageRepository, completion utils.CompletionClientInterface) MatcherServiceInterface {
	return &MatcherService{packageRepo: packageRepo, completion: completion}
}

func (s *MatcherService) FindMatches(ctx context.Context, prefs request_models.FindPackagesRequest) ([]response_models.MatchResult, error) {
	if len(prefs.Destinations) == 0 {
		return nil, utils.ErrNoDestinations
	}

	packages, err := s.packageRepo.ListAllPackages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Literal containment pre-filter. This only bounds the candidate set
	// handed to the ranking model; relevance is the model's job.
	candidates := filterByDestination(packages, prefs.Destinations)
	if len(candidates) == 0 {
		return []response_models.MatchResult{}, nil
	}

	prompt := s.buildRankingPrompt(prefs, candidates)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0.2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRankingFailed, err)
	}

	results, err := parseRankingResponse(raw, candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRankingFailed, err)
	}

	log.Printf("matcher: ranked %d of %d candidates", len(results), len(candidates))
	return results, nil
}

func filterByDestination(packages []*db_models.TravelPackage, destinations []string) []*db_models.TravelPackage {
	var candidates []*db_models.TravelPackage
	for _, pkg := range packages {
		name := strings.ToLower(pkg.DestinationName)
		for _, dest := range destinations {
			if dest != "" && strings.Contains(name, strings.ToLower(dest)) {
				candidates = append(candidates, pkg)
				break
			}
		}
	}
	return candidates
}

// normalizePrice coerces the catalog's heterogeneous price values into a
// plain number: numerics pass through, strings are stripped to their digits,
// anything unparseable becomes 0.
func normalizePrice(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		var digits strings.Builder
		for _, r := range v {
			if r >= '0' && r <= '9' {
				digits.WriteRune(r)
			}
		}
		if digits.Len() == 0 {
			return 0
		}
		n, err := strconv.ParseFloat(digits.String(), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// packagePrice resolves a candidate's price using the fixed field precedence:
// minimum price, then price range, then generic price, then budget.
func packagePrice(pkg *db_models.TravelPackage) float64 {
	for _, field := range []string{pkg.PriceMin, pkg.PriceRange, pkg.Price, pkg.Budget} {
		if field != "" {
			return normalizePrice(field)
		}
	}
	return 0
}

func (s *MatcherService) buildRankingPrompt(prefs request_models.FindPackagesRequest, candidates []*db_models.TravelPackage) string {
	var prompt strings.Builder

	prompt.WriteString("You rank travel packages for a user. Evaluation priority, highest first: destination match, hotel star category, travel group and vibe fit, budget fit.\n")
	prompt.WriteString("Return strict JSON only, no prose:\n")
	prompt.WriteString(`{"matches":[{"packageId":"...","matchScore":0,"matchReason":"one to two sentences referencing the user's stated preferences"}]}`)
	prompt.WriteString("\nAt most 3 matches, matchScore is an integer 0-100.\n")

	prompt.WriteString("\nUser preferences:\n")
	prompt.WriteString(fmt.Sprintf("- Destinations: %s\n", strings.Join(prefs.Destinations, ", ")))
	if prefs.TravelDate != "" {
		prompt.WriteString(fmt.Sprintf("- Travel date: %s\n", prefs.TravelDate))
	}
	if prefs.DurationDays > 0 {
		prompt.WriteString(fmt.Sprintf("- Duration: %d days\n", prefs.DurationDays))
	}
	if prefs.HotelTier != "" {
		prompt.WriteString(fmt.Sprintf("- Hotel tier: %s\n", prefs.HotelTier))
	}
	if prefs.TravelerType != "" {
		prompt.WriteString(fmt.Sprintf("- Traveling as: %s\n", prefs.TravelerType))
	}
	if prefs.Budget != "" {
		prompt.WriteString(fmt.Sprintf("- Budget: %s\n", prefs.Budget))
	}
	if prefs.Feedback != "" {
		prompt.WriteString(fmt.Sprintf("- Additional preferences: %s\n", prefs.Feedback))
	}

	prompt.WriteString("\nCandidate packages:\n")
	for _, pkg := range candidates {
		overview := pkg.Overview
		if len(overview) > 200 {
			overview = overview[:200]
		}
		prompt.WriteString(fmt.Sprintf("- ID:%s | Destination:%s | Duration:%dD/%dN | Price:%.0f | Type:%s | Stars:%s | Theme:%s | Mood:%s | Overview:%s\n",
			pkg.ID.String(), pkg.DestinationName, pkg.DurationDays, pkg.DurationNights,
			packagePrice(pkg), pkg.TravelType, pkg.StarCategory, pkg.Theme, pkg.Mood, overview))
	}

	return prompt.String()
}

func parseRankingResponse(raw string, candidates []*db_models.TravelPackage) ([]response_models.MatchResult, error) {
	var parsed struct {
		Matches []response_models.MatchResult `json:"matches"`
	}
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("invalid ranking JSON: %w", err)
	}

	known := make(map[string]bool, len(candidates))
	for _, pkg := range candidates {
		known[pkg.ID.String()] = true
	}

	// Drop hallucinated ids and duplicates; the model only gets credit for
	// packages it was actually shown.
	seen := make(map[string]bool)
	results := make([]response_models.MatchResult, 0, maxRankedMatches)
	for _, m := range parsed.Matches {
		if !known[m.PackageID] || seen[m.PackageID] {
			continue
		}
		if m.MatchScore < 0 {
			m.MatchScore = 0
		}
		if m.MatchScore > 100 {
			m.MatchScore = 100
		}
		seen[m.PackageID] = true
		results = append(results, m)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > maxRankedMatches {
		results = results[:maxRankedMatches]
	}
	return results, nil
}
