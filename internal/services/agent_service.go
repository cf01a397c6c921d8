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

type AgentServiceInterface interface {
	// Classify decides what the user wants from their latest message:
	// a package search, general chat, or a clarification. It never fails —
	// on any model or parse error it falls back to a plain search with the
	// message as the query, because attempting a search beats blocking the
	// user.
	Classify(ctx context.Context, latestMessage string, history []request_models.ChatTurn) response_models.AgentDecision
}

type AgentService struct {
	completion      utils.CompletionClientInterface
	destinationRepo DestinationCatalog
}

// DestinationCatalog is the slice of the destination repository the agent
// needs: just the valid names to anchor the prompt.
type DestinationCatalog interface {
	ListDestinationNames(ctx context.Context) ([]string, error)
}

func NewAgentService(completion utils.CompletionClientInterface, destinationRepo DestinationCatalog) AgentServiceInterface {
	return &AgentService{completion: completion, destinationRepo: destinationRepo}
}

func (s *AgentService) Classify(ctx context.Context, latestMessage string, history []request_models.ChatTurn) response_models.AgentDecision {
	// Only the last two turns matter for intent; older context adds noise
	// and tokens.
	if len(history) > 2 {
		history = history[len(history)-2:]
	}

	catalog, err := s.destinationRepo.ListDestinationNames(ctx)
	if err != nil {
		log.Printf("agent: could not load destination catalog: %v", err)
	}

	prompt := s.buildClassifierPrompt(latestMessage, history, catalog)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0)
	if err != nil {
		log.Printf("agent: model call failed, falling back to search: %v", err)
		return response_models.FallbackDecision(latestMessage)
	}

	var decision response_models.AgentDecision
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &decision); err != nil {
		log.Printf("agent: unparseable decision, falling back to search: %v", err)
		return response_models.FallbackDecision(latestMessage)
	}

	if decision.Intent == "" {
		return response_models.FallbackDecision(latestMessage)
	}
	if decision.SearchQuery == "" {
		decision.SearchQuery = latestMessage
	}
	return decision
}

func (s *AgentService) buildClassifierPrompt(latestMessage string, history []request_models.ChatTurn, catalog []string) string {
	var prompt strings.Builder

	prompt.WriteString("You are the decision core of a travel-package assistant. Classify the user's intent and return JSON only:\n")
	prompt.WriteString(`{"intent":"SEARCH_PACKAGES|GENERAL_CHAT|CLARIFICATION","reasoning":"...","searchQuery":"...","filters":{"budget":{"min":0,"max":0},"destination":"...","theme":"...","mood":"...","duration":{"min":0,"max":0},"travelType":"...","hotel":{"minStar":0,"category":"..."}}}`)
	prompt.WriteString("\n\nRules:\n")
	prompt.WriteString("- HARD RULE: if the message mentions any destination name, intent MUST be SEARCH_PACKAGES, never CLARIFICATION.\n")
	prompt.WriteString("- searchQuery is rewritten for semantic similarity search, not the literal message.\n")
	prompt.WriteString("- Only include filter fields the user actually constrained; omit the rest.\n")

	if len(catalog) > 0 {
		prompt.WriteString(fmt.Sprintf("\nKnown destinations: %s\n", strings.Join(catalog, ", ")))
	}

	if len(history) > 0 {
		prompt.WriteString("\nRecent conversation:\n")
		for _, turn := range history {
			prompt.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
	}

	prompt.WriteString(fmt.Sprintf("\nLatest message: %s\n", latestMessage))
	return prompt.String()
}
