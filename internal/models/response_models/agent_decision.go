package response_models

const (
	IntentSearchPackages = "SEARCH_PACKAGES"
	IntentGeneralChat    = "GENERAL_CHAT"
	IntentClarification  = "CLARIFICATION"
)

type BudgetRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

type DurationRange struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

type HotelFilter struct {
	MinStar  int    `json:"minStar,omitempty"`
	Category string `json:"category,omitempty"`
}

type AgentFilters struct {
	Budget      *BudgetRange   `json:"budget,omitempty"`
	Destination string         `json:"destination,omitempty"`
	Theme       string         `json:"theme,omitempty"`
	Mood        string         `json:"mood,omitempty"`
	Duration    *DurationRange `json:"duration,omitempty"`
	TravelType  string         `json:"travelType,omitempty"`
	Hotel       *HotelFilter   `json:"hotel,omitempty"`
}

// AgentDecision is the intent classifier's verdict for one message.
// SearchQuery is rewritten for similarity search and may differ from the
// literal user text. Reasoning is for humans only, nothing downstream
// consumes it.
type AgentDecision struct {
	Intent      string       `json:"intent"`
	Reasoning   string       `json:"reasoning"`
	SearchQuery string       `json:"searchQuery"`
	Filters     AgentFilters `json:"filters"`
}

// FallbackDecision prefers attempting a search over blocking the user: the
// latest message is used verbatim as the query with no filters.
func FallbackDecision(latestMessage string) AgentDecision {
	return AgentDecision{
		Intent:      IntentSearchPackages,
		Reasoning:   "fallback: classifier unavailable, defaulting to search",
		SearchQuery: latestMessage,
	}
}
