package request_models

type ExtractRequest struct {
	UserInput             string    `json:"userInput"`
	CurrentQuestion       string    `json:"currentQuestion"`
	ExistingTripInfo      TripState `json:"existingTripInfo"`
	AvailableDestinations []string  `json:"availableDestinations"`
}
