package request_models

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Prompt                string     `json:"prompt"`
	Conversation          []ChatTurn `json:"conversation"`
	AvailableDestinations []string   `json:"availableDestinations,omitempty"`
}

type AnalyzeImageRequest struct {
	ImageBase64           string   `json:"imageBase64"`
	AvailableDestinations []string `json:"availableDestinations"`
}

type TTSRequest struct {
	Text string `json:"text"`
}
