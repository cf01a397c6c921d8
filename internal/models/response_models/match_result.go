package response_models

// MatchResult is one ranked entry out of the package matcher. Results are
// always sorted by MatchScore descending; the LLM-ranking path returns at
// most 3 of them.
type MatchResult struct {
	PackageID   string `json:"packageId"`
	MatchScore  int    `json:"matchScore"`
	MatchReason string `json:"matchReason"`
}

// SearchHit is one vector-similarity result: the stored metadata snapshot
// plus the index's native score. Metadata fields are always strings, empty
// when absent, so consumers never have to null-check.
type SearchHit struct {
	PackageID       string  `json:"packageId"`
	DestinationName string  `json:"destinationName"`
	DestinationID   string  `json:"destinationId"`
	Duration        string  `json:"duration"`
	PriceRange      string  `json:"priceRange"`
	StarCategory    string  `json:"starCategory"`
	TravelType      string  `json:"travelType"`
	PrimaryImage    string  `json:"primaryImage"`
	Overview        string  `json:"overview"`
	Score           float64 `json:"score"`
}

type IndexStats struct {
	TotalVectors int64 `json:"totalVectors"`
	Dimension    int   `json:"dimension"`
}

type EmbedPackagesResult struct {
	Success           bool       `json:"success"`
	PackagesProcessed int        `json:"packagesProcessed"`
	TotalPackages     int        `json:"totalPackages"`
	Skipped           int        `json:"skipped"`
	Errors            []string   `json:"errors,omitempty"`
	IndexStats        IndexStats `json:"indexStats"`
}
