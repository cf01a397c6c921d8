package utils

import "strings"

// NormalizeDestination maps a free-text or abbreviated location name onto the
// canonical destination catalog. Matching is case-insensitive and succeeds on
// an exact match or a bidirectional substring match ("Goa" matches "Goa Beach",
// "North Goa" matches "Goa"). The first catalog entry that satisfies the rule
// wins; no tie-break scoring is applied. Returns ("", false) when nothing
// matches — the caller must leave the destination unset rather than invent one.
func NormalizeDestination(candidate string, catalog []string) (string, bool) {
	cand := strings.ToLower(strings.TrimSpace(candidate))
	if cand == "" {
		return "", false
	}

	// Legacy compatibility: the old site accepted "bli" (and anything
	// containing "bali"/"bli") as Bali. Checked before the generic rule so
	// catalog ordering can never shadow it.
	if strings.Contains(cand, "bali") || strings.Contains(cand, "bli") {
		for _, entry := range catalog {
			if strings.EqualFold(entry, "Bali") {
				return entry, true
			}
		}
	}

	for _, entry := range catalog {
		lower := strings.ToLower(entry)
		if cand == lower || strings.Contains(lower, cand) || strings.Contains(cand, lower) {
			return entry, true
		}
	}

	return "", false
}
