package response_models

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ExtractionResult is the per-turn output of the trip-field extractor. Every
// trip field is optional; Understood reports whether the field belonging to
// the question currently being asked was identified (typo-corrected answers
// still count). A "skip" on the feedback question counts as understood and
// leaves the field nil.
type ExtractionResult struct {
	Destination  *string `json:"destination,omitempty"`
	TravelDate   *string `json:"travelDate,omitempty"`
	DurationDays *int    `json:"durationDays,omitempty"`
	HotelTier    *string `json:"hotelTier,omitempty"`
	TravelerType *string `json:"travelerType,omitempty"`
	Budget       *string `json:"budget,omitempty"`
	Feedback     *string `json:"freeformFeedback,omitempty"`
	Confidence   string  `json:"confidence"`
	Understood   bool    `json:"understood"`
}

// NotUnderstood is the synthetic result returned whenever the upstream model
// call fails or produces unparseable output. Callers re-prompt instead of
// treating it as fatal.
func NotUnderstood() ExtractionResult {
	return ExtractionResult{Confidence: ConfidenceLow, Understood: false}
}
