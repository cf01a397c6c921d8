package utils

import (
	"fmt"
	"strings"

	"tripscout/internal/models/db_models"
)

// FormatPackageForEmbedding builds the canonical text blob that gets embedded
// for a package. Field order is fixed and fields absent on the record are
// skipped outright (no empty labels), so the output is stable for an unchanged
// record. Pure function, no I/O.
func FormatPackageForEmbedding(pkg *db_models.TravelPackage) string {
	var parts []string

	if pkg.DestinationName != "" {
		parts = append(parts, fmt.Sprintf("Destination: %s", pkg.DestinationName))
	}
	if pkg.Overview != "" {
		parts = append(parts, fmt.Sprintf("Overview: %s", pkg.Overview))
	}
	if len(pkg.Highlights) > 0 {
		parts = append(parts, fmt.Sprintf("Highlights: %s", strings.Join(pkg.Highlights, ", ")))
	}
	if pkg.TravelType != "" {
		parts = append(parts, fmt.Sprintf("Travel type: %s", pkg.TravelType))
	}
	if pkg.StarCategory != "" {
		parts = append(parts, fmt.Sprintf("Hotel category: %s", pkg.StarCategory))
	}
	if pkg.DurationDays > 0 {
		parts = append(parts, fmt.Sprintf("Duration: %d days %d nights", pkg.DurationDays, pkg.DurationNights))
	}
	if len(pkg.Activities) > 0 {
		parts = append(parts, fmt.Sprintf("Activities: %s", strings.Join(pkg.Activities, ", ")))
	}
	if len(pkg.Inclusions) > 0 {
		inclusions := pkg.Inclusions
		if len(inclusions) > 5 {
			inclusions = inclusions[:5]
		}
		parts = append(parts, fmt.Sprintf("Inclusions: %s", strings.Join(inclusions, ", ")))
	}

	return strings.Join(parts, ". ")
}
