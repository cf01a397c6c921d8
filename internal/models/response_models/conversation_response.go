package response_models

import "tripscout/internal/models/request_models"

type ConversationResponse struct {
	SessionID  string                    `json:"session_id"`
	Question   string                    `json:"question,omitempty"`
	Step       int                       `json:"step"`
	TotalSteps int                       `json:"total_steps"`
	IsComplete bool                      `json:"is_complete"`
	TripState  *request_models.TripState `json:"trip_state,omitempty"`
	Packages   []MatchResult             `json:"packages,omitempty"`
	Message    string                    `json:"message,omitempty"`
}

type AnalyzeImageResponse struct {
	DetectedLocation    *string  `json:"detectedLocation"`
	RawDetectedLocation *string  `json:"rawDetectedLocation"`
	Confidence          string   `json:"confidence"`
	Landmarks           []string `json:"landmarks,omitempty"`
	Description         string   `json:"description,omitempty"`
	SimilarLocations    []string `json:"similarLocations,omitempty"`
}
