package request_models

// TripState is the running result of one planning conversation. Fields are
// pointers because "not answered yet" and "explicitly skipped" both need to be
// distinguishable from a real value. Once Destination is set it always equals
// a catalog entry, never a raw user string.
type TripState struct {
	Destination  *string `json:"destination,omitempty"`
	TravelDate   *string `json:"travelDate,omitempty"`
	DurationDays *int    `json:"durationDays,omitempty"`
	HotelTier    *string `json:"hotelTier,omitempty"`
	TravelerType *string `json:"travelerType,omitempty"`
	Budget       *string `json:"budget,omitempty"`
	Feedback     *string `json:"freeformFeedback,omitempty"`
}

// Complete reports whether every wizard question up to and including the
// traveler-type step has an answer. Feedback is allowed to stay nil (the user
// may skip it), so it does not gate completion.
func (s *TripState) Complete() bool {
	return s.Destination != nil &&
		s.TravelDate != nil &&
		s.DurationDays != nil &&
		s.HotelTier != nil &&
		s.TravelerType != nil
}
