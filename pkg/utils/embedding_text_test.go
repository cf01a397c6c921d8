package utils

import (
	"strings"
	"testing"

	"github.com/lib/pq"

	"tripscout/internal/models/db_models"
)

func TestFormatPackageForEmbedding(t *testing.T) {
	pkg := &db_models.TravelPackage{
		DestinationName: "Goa",
		Overview:        "Beach resort getaway",
		Highlights:      pq.StringArray{"beach", "nightlife"},
		TravelType:      "couple",
		StarCategory:    "4-star",
		DurationDays:    4,
		DurationNights:  3,
		Activities:      pq.StringArray{"snorkeling"},
		Inclusions:      pq.StringArray{"breakfast", "transfers", "wifi", "pool", "spa", "gym", "bar"},
	}

	got := FormatPackageForEmbedding(pkg)

	want := "Destination: Goa. Overview: Beach resort getaway. Highlights: beach, nightlife. " +
		"Travel type: couple. Hotel category: 4-star. Duration: 4 days 3 nights. " +
		"Activities: snorkeling. Inclusions: breakfast, transfers, wifi, pool, spa"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// Same record, same text.
	if again := FormatPackageForEmbedding(pkg); again != got {
		t.Errorf("output not deterministic:\n%s\nvs\n%s", got, again)
	}
}

func TestFormatPackageForEmbeddingSkipsAbsentFields(t *testing.T) {
	pkg := &db_models.TravelPackage{DestinationName: "Kerala"}

	got := FormatPackageForEmbedding(pkg)
	if got != "Destination: Kerala" {
		t.Errorf("got %q, want only the destination part", got)
	}
	if strings.Contains(got, "Overview:") || strings.Contains(got, "Duration:") {
		t.Errorf("empty fields must not produce labels: %q", got)
	}
}

func TestFormatPackageForEmbeddingEmptyPackage(t *testing.T) {
	if got := FormatPackageForEmbedding(&db_models.TravelPackage{}); got != "" {
		t.Errorf("empty package should produce empty text, got %q", got)
	}
}
