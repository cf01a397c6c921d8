package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"tripscout/internal/models/request_models"
)

// EmbeddingClientInterface turns text into fixed-length vectors. Failures
// propagate to the caller untouched; no retry logic lives at this level.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// CompletionClientInterface abstracts the generative model so services can be
// tested with fakes and the provider can be swapped (OpenAI or Gemini) via
// configuration.
type CompletionClientInterface interface {
	// CompleteJSON sends a single prompt expecting strict JSON back.
	CompleteJSON(ctx context.Context, prompt string, temperature float32) (string, error)
	// Chat runs a conversational completion with an optional system prompt
	// and short history, returning plain text.
	Chat(ctx context.Context, systemPrompt string, history []request_models.ChatTurn, latest string) (string, error)
	// AnalyzeImage runs a vision prompt against a base64-encoded image.
	AnalyzeImage(ctx context.Context, imageBase64 string, prompt string) (string, error)
	// SynthesizeSpeech renders text to audio bytes (audio/mpeg). Providers
	// without a speech model return ErrTTSNotSupported.
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}
