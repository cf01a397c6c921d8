package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripscout/internal/models/request_models"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's
// Gemini models. Gemini has no dedicated speech endpoint, so SynthesizeSpeech
// reports ErrTTSNotSupported.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{client: client, model: model}, nil
}

func (c *GeminiCompletionClient) CompleteJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return collectText(resp)
}

func (c *GeminiCompletionClient) Chat(ctx context.Context, systemPrompt string, history []request_models.ChatTurn, latest string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	session := m.StartChat()
	for _, turn := range history {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(latest))
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}
	return collectText(resp)
}

func (c *GeminiCompletionClient) AnalyzeImage(ctx context.Context, imageBase64 string, prompt string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", fmt.Errorf("gemini vision: decode image: %w", err)
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.ImageData("jpeg", data), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini vision: %w", err)
	}
	return collectText(resp)
}

func (c *GeminiCompletionClient) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	return nil, ErrTTSNotSupported
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: empty response content")
	}
	return sb.String(), nil
}
