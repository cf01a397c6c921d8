// cmd/fx/ai_fx/init.go
package ai_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pgvector/pgvector-go"
	"go.uber.org/fx"

	"tripscout/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideCompletionClient)

// CompletionConfig holds configuration for the chat/completion provider.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideEmbeddingClient creates the embedding client. Embeddings are
// OpenAI-only (the index schema is fixed at 1536 dimensions); without an
// OPENAI_API_KEY the app still boots, and every index operation reports the
// index as not configured instead.
func ProvideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, vector index operations disabled")
		return &notConfiguredEmbedder{}
	}

	model := getEnvWithDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
	log.Printf("Initializing OpenAI embedding client with model: %s", model)
	return utils.NewOpenAIEmbeddingClient(apiKey, model)
}

// ProvideCompletionClient creates the completion client based on AI_PROVIDER.
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAICompletionClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiCompletionClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// notConfiguredEmbedder stands in when no embedding key is configured so the
// rest of the app keeps working without the vector index.
type notConfiguredEmbedder struct{}

func (n *notConfiguredEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.Vector{}, utils.ErrIndexNotConfigured
}

func (n *notConfiguredEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	return nil, utils.ErrIndexNotConfigured
}
