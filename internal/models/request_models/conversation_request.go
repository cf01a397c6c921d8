package request_models

type ConversationAnswerRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	// Mode selects strict Q&A ("wizard", default) or open-ended chat
	// ("chat") for this turn. The two are never mixed within one turn.
	Mode string `json:"mode,omitempty"`
}
