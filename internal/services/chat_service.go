package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

const ttsMaxChars = 4096

const chatFallbackMessage = "Sorry, I'm having trouble answering right now. Please try again in a moment."

type ChatServiceInterface interface {
	// Chat always returns something friendly to show the user; internal
	// failures are logged and replaced with a fallback message.
	Chat(ctx context.Context, req request_models.ChatRequest) string
	AnalyzeImage(ctx context.Context, req request_models.AnalyzeImageRequest) (*response_models.AnalyzeImageResponse, error)
	// Synthesize renders text to mpeg audio, truncating input to 4096
	// characters first.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type ChatService struct {
	completion utils.CompletionClientInterface
}

func NewChatService(completion utils.CompletionClientInterface) ChatServiceInterface {
	return &ChatService{completion: completion}
}

func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) string {
	system := s.buildSystemPrompt(req.AvailableDestinations)

	reply, err := s.completion.Chat(ctx, system, req.Conversation, req.Prompt)
	if err != nil {
		log.Printf("chat: completion failed: %v", err)
		return chatFallbackMessage
	}
	return reply
}

func (s *ChatService) buildSystemPrompt(availableDestinations []string) string {
	var prompt strings.Builder
	prompt.WriteString("You are a friendly travel-planning assistant for a travel booking site. ")
	prompt.WriteString("Keep answers short and helpful, and steer the conversation toward planning a trip.")
	if len(availableDestinations) > 0 {
		prompt.WriteString(fmt.Sprintf(" Only ever mention or recommend these destinations: %s.",
			strings.Join(availableDestinations, ", ")))
	}
	return prompt.String()
}

func (s *ChatService) AnalyzeImage(ctx context.Context, req request_models.AnalyzeImageRequest) (*response_models.AnalyzeImageResponse, error) {
	prompt := `Identify the travel destination shown in this photo. Return JSON only:
{"location":"place name or empty if unknown","confidence":"high|medium|low","landmarks":["..."],"description":"one sentence","similarLocations":["..."]}`

	raw, err := s.completion.AnalyzeImage(ctx, req.ImageBase64, prompt)
	if err != nil {
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}

	var parsed struct {
		Location         string   `json:"location"`
		Confidence       string   `json:"confidence"`
		Landmarks        []string `json:"landmarks"`
		Description      string   `json:"description"`
		SimilarLocations []string `json:"similarLocations"`
	}
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable vision response: %w", err)
	}

	resp := &response_models.AnalyzeImageResponse{
		Confidence:       parsed.Confidence,
		Landmarks:        parsed.Landmarks,
		Description:      parsed.Description,
		SimilarLocations: parsed.SimilarLocations,
	}
	if resp.Confidence == "" {
		resp.Confidence = response_models.ConfidenceLow
	}

	// The raw detection is kept for display; the catalog-normalized name is
	// what the rest of the pipeline may use.
	if parsed.Location != "" {
		detected := parsed.Location
		resp.RawDetectedLocation = &detected
		if canonical, ok := utils.NormalizeDestination(parsed.Location, req.AvailableDestinations); ok {
			resp.DetectedLocation = &canonical
		}
	}

	return resp, nil
}

func (s *ChatService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if len(text) > ttsMaxChars {
		text = text[:ttsMaxChars]
	}
	return s.completion.SynthesizeSpeech(ctx, text)
}
