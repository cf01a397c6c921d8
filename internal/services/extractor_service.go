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

// Question identifiers for the wizard flow. "general" lets callers extract
// whatever is present without anchoring to a specific step.
const (
	QuestionDestination = "destination"
	QuestionDate        = "date"
	QuestionDays        = "days"
	QuestionHotel       = "hotel"
	QuestionTravelType  = "travelType"
	QuestionFeedback    = "feedback"
	QuestionGeneral     = "general"
)

type ExtractorServiceInterface interface {
	// Extract pulls structured trip fields out of one user utterance. A
	// non-nil error means the upstream model call itself failed; the
	// returned result is still safe to use (confidence low, understood
	// false) so conversations degrade instead of breaking.
	Extract(ctx context.Context, req request_models.ExtractRequest) (response_models.ExtractionResult, error)
}

type ExtractorService struct {
	completion utils.CompletionClientInterface
}

func NewExtractorService(completion utils.CompletionClientInterface) ExtractorServiceInterface {
	return &ExtractorService{completion: completion}
}

func (s *ExtractorService) Extract(ctx context.Context, req request_models.ExtractRequest) (response_models.ExtractionResult, error) {
	prompt := s.buildExtractionPrompt(req)

	raw, err := s.completion.CompleteJSON(ctx, prompt, 0.1)
	if err != nil {
		log.Printf("extractor: model call failed: %v", err)
		return response_models.NotUnderstood(), fmt.Errorf("extraction model call failed: %w", err)
	}

	var result response_models.ExtractionResult
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &result); err != nil {
		log.Printf("extractor: unparseable model response: %v", err)
		return response_models.NotUnderstood(), nil
	}

	s.sanitize(&result, req)
	return result, nil
}

// sanitize enforces the catalog-membership invariant and cleans up model
// output the schema alone cannot guarantee.
func (s *ExtractorService) sanitize(result *response_models.ExtractionResult, req request_models.ExtractRequest) {
	if result.Confidence == "" {
		result.Confidence = response_models.ConfidenceLow
	}

	// The destination must be catalog-valid or null even if the model
	// claims it already normalized it. Other fields are left untouched.
	if result.Destination != nil {
		if canonical, ok := utils.NormalizeDestination(*result.Destination, req.AvailableDestinations); ok {
			result.Destination = &canonical
		} else {
			result.Destination = nil
			if req.CurrentQuestion == QuestionDestination {
				result.Understood = false
			}
		}
	}

	if result.TravelDate != nil {
		if normalized, ok := utils.NormalizeTravelDate(*result.TravelDate); ok {
			result.TravelDate = &normalized
		} else {
			result.TravelDate = nil
			if req.CurrentQuestion == QuestionDate {
				result.Understood = false
			}
		}
	}

	if result.DurationDays != nil && *result.DurationDays <= 0 {
		result.DurationDays = nil
		if req.CurrentQuestion == QuestionDays {
			result.Understood = false
		}
	}

	// Tier and traveler type are closed enums; the prompt asks for them but
	// the model can still invent values like "luxury" or "7-star".
	if result.HotelTier != nil && !validHotelTiers[*result.HotelTier] {
		result.HotelTier = nil
		if req.CurrentQuestion == QuestionHotel {
			result.Understood = false
		}
	}

	if result.TravelerType != nil && !validTravelerTypes[*result.TravelerType] {
		result.TravelerType = nil
		if req.CurrentQuestion == QuestionTravelType {
			result.Understood = false
		}
	}
}

var validHotelTiers = map[string]bool{
	"3-star": true,
	"4-star": true,
	"5-star": true,
}

var validTravelerTypes = map[string]bool{
	"solo":    true,
	"family":  true,
	"couple":  true,
	"friends": true,
}

func (s *ExtractorService) buildExtractionPrompt(req request_models.ExtractRequest) string {
	var prompt strings.Builder

	prompt.WriteString("You extract structured trip details from one user message in a travel-planning conversation.\n")
	prompt.WriteString("Return JSON only, exactly this shape (omit fields you did not find):\n")
	prompt.WriteString(`{"destination":"...","travelDate":"YYYY-MM-DD","durationDays":3,"hotelTier":"4-star","travelerType":"family","budget":"...","freeformFeedback":"...","confidence":"high|medium|low","understood":true}`)
	prompt.WriteString("\n\n")

	prompt.WriteString(fmt.Sprintf("Question currently being asked: %s\n", req.CurrentQuestion))
	prompt.WriteString(questionInstructions(req.CurrentQuestion))

	if len(req.AvailableDestinations) > 0 {
		prompt.WriteString(fmt.Sprintf("\nValid destinations (the only acceptable values for \"destination\"): %s\n",
			strings.Join(req.AvailableDestinations, ", ")))
	}

	if existing, err := json.Marshal(req.ExistingTripInfo); err == nil {
		prompt.WriteString(fmt.Sprintf("\nAlready collected (do not re-extract unless the user changes it): %s\n", existing))
	}

	prompt.WriteString("\nSet \"understood\" to true only if you identified the field for the current question, typo-corrected answers included.\n")
	prompt.WriteString(fmt.Sprintf("\nUser message: %s\n", req.UserInput))

	return prompt.String()
}

func questionInstructions(question string) string {
	switch question {
	case QuestionDestination:
		return "The user is answering where they want to go. Match their answer against the valid destinations list, tolerating typos and partial names.\n"
	case QuestionDate:
		return "The user is answering when they travel. Convert natural language to an ISO calendar date. If only a month and year are given, use the 15th of that month.\n"
	case QuestionDays:
		return "The user is answering how many days the trip lasts. Extract a positive integer, written numbers included.\n"
	case QuestionHotel:
		return "The user is answering their hotel preference. Map budget/economy to \"3-star\", mid-range/standard to \"4-star\", luxury/premium to \"5-star\".\n"
	case QuestionTravelType:
		return "The user is answering who travels. Map alone/solo to \"solo\", kids/family to \"family\", partner/romantic to \"couple\", friends/group to \"friends\".\n"
	case QuestionFeedback:
		return "The user may share free-text preferences. If they say \"skip\" or \"no\", leave freeformFeedback out but still set understood to true.\n"
	default:
		return "Extract any trip details you can find in the message.\n"
	}
}
