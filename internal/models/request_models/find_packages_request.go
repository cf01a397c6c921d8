package request_models

// FindPackagesRequest carries the wizard-collected preferences straight into
// the matching pipeline. Destinations is the only hard requirement.
type FindPackagesRequest struct {
	Destinations []string `json:"destinations"`
	TravelDate   string   `json:"travelDate,omitempty"`
	DurationDays int      `json:"durationDays,omitempty"`
	HotelTier    string   `json:"hotelTier,omitempty"`
	TravelerType string   `json:"travelerType,omitempty"`
	Budget       string   `json:"budget,omitempty"`
	Feedback     string   `json:"freeformFeedback,omitempty"`
}

type SemanticSearchRequest struct {
	Query  string            `json:"query"`
	TopK   int               `json:"topK,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
}

type EmbedPackagesRequest struct {
	ClearExisting bool `json:"clearExisting,omitempty"`
}

type AdminLoginRequest struct {
	Key string `json:"key"`
}
