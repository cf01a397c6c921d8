package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

const questionDone = "done"

// questionOrder is the fixed wizard sequence. Feedback is last and skippable;
// everything before it must be answered before matching runs.
var questionOrder = []string{
	QuestionDestination,
	QuestionDate,
	QuestionDays,
	QuestionHotel,
	QuestionTravelType,
	QuestionFeedback,
}

var questionPrompts = map[string]string{
	QuestionDestination: "Where would you like to go?",
	QuestionDate:        "When are you planning to travel?",
	QuestionDays:        "How many days should the trip be?",
	QuestionHotel:       "What kind of hotel do you prefer? Budget, mid-range or luxury?",
	QuestionTravelType:  "Who is traveling? Solo, as a couple, with family or with friends?",
	QuestionFeedback:    "Anything else I should keep in mind? Say \"skip\" if not.",
}

const (
	replyNotUnderstood   = "Sorry, I didn't quite catch that. "
	replyMatchingFailed  = "I have everything I need, but package matching is unavailable right now. Please try again in a few minutes."
	replyTripComplete    = "Great, here are the packages that fit your trip best."
	replyNoPackagesFound = "I couldn't find packages matching your trip yet. Try a different destination or duration."
)

type ConversationServiceInterface interface {
	Start(ctx context.Context) (*response_models.ConversationResponse, error)
	// Answer advances one wizard step (mode "wizard", the default) or routes
	// a free-form message through the intent classifier (mode "chat").
	Answer(ctx context.Context, req request_models.ConversationAnswerRequest) (*response_models.ConversationResponse, error)
}

type ConversationService struct {
	sessions        repositories.SessionStore
	extractor       ExtractorServiceInterface
	matcher         MatcherServiceInterface
	agent           AgentServiceInterface
	chat            ChatServiceInterface
	index           IndexServiceInterface
	destinationRepo repositories.DestinationRepository
}

func NewConversationService(
	sessions repositories.SessionStore,
	extractor ExtractorServiceInterface,
	matcher MatcherServiceInterface,
	agent AgentServiceInterface,
	chat ChatServiceInterface,
	index IndexServiceInterface,
	destinationRepo repositories.DestinationRepository,
) ConversationServiceInterface {
	return &ConversationService{
		sessions:        sessions,
		extractor:       extractor,
		matcher:         matcher,
		agent:           agent,
		chat:            chat,
		index:           index,
		destinationRepo: destinationRepo,
	}
}

func (s *ConversationService) Start(ctx context.Context) (*response_models.ConversationResponse, error) {
	session := &repositories.ConversationSession{
		ID:              uuid.NewString(),
		CurrentQuestion: questionOrder[0],
		CreatedAt:       time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ConversationResponse{
		SessionID:  session.ID,
		Question:   questionPrompts[session.CurrentQuestion],
		Step:       1,
		TotalSteps: len(questionOrder),
		TripState:  &session.TripState,
	}, nil
}

func (s *ConversationService) Answer(ctx context.Context, req request_models.ConversationAnswerRequest) (*response_models.ConversationResponse, error) {
	if req.SessionID == "" || req.Message == "" {
		return nil, utils.ErrInvalidInput
	}

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	// The chat side channel is only open while the wizard is still running;
	// a completed session answers with its final state regardless of mode.
	if req.Mode == "chat" && session.CurrentQuestion != questionDone {
		return s.answerChat(ctx, session, req.Message)
	}
	return s.answerWizard(ctx, session, req.Message)
}

func (s *ConversationService) answerWizard(ctx context.Context, session *repositories.ConversationSession, message string) (*response_models.ConversationResponse, error) {
	if session.CurrentQuestion == questionDone {
		return s.completedResponse(ctx, session)
	}

	catalog, err := s.destinationRepo.ListDestinationNames(ctx)
	if err != nil {
		log.Printf("conversation: could not load destination catalog: %v", err)
	}

	// A model-call error leaves result as not-understood, which re-asks the
	// question instead of dropping the session.
	result, _ := s.extractor.Extract(ctx, request_models.ExtractRequest{
		UserInput:             message,
		CurrentQuestion:       session.CurrentQuestion,
		ExistingTripInfo:      session.TripState,
		AvailableDestinations: catalog,
	})

	if !result.Understood {
		return &response_models.ConversationResponse{
			SessionID:  session.ID,
			Question:   questionPrompts[session.CurrentQuestion],
			Step:       questionStep(session.CurrentQuestion),
			TotalSteps: len(questionOrder),
			TripState:  &session.TripState,
			Message:    replyNotUnderstood + questionPrompts[session.CurrentQuestion],
		}, nil
	}

	mergeTripState(&session.TripState, result)
	session.CurrentQuestion = nextQuestion(session)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if session.CurrentQuestion == questionDone {
		return s.completedResponse(ctx, session)
	}

	return &response_models.ConversationResponse{
		SessionID:  session.ID,
		Question:   questionPrompts[session.CurrentQuestion],
		Step:       questionStep(session.CurrentQuestion),
		TotalSteps: len(questionOrder),
		TripState:  &session.TripState,
	}, nil
}

// completedResponse runs matching for a fully collected trip. Matching
// failures surface as a friendly message, not an HTTP error: by this point
// the user has answered six questions and should never lose the session.
func (s *ConversationService) completedResponse(ctx context.Context, session *repositories.ConversationSession) (*response_models.ConversationResponse, error) {
	resp := &response_models.ConversationResponse{
		SessionID:  session.ID,
		Step:       len(questionOrder),
		TotalSteps: len(questionOrder),
		IsComplete: true,
		TripState:  &session.TripState,
	}

	if session.TripState.Destination == nil {
		resp.Message = replyNoPackagesFound
		return resp, nil
	}

	prefs := request_models.FindPackagesRequest{
		Destinations: []string{*session.TripState.Destination},
	}
	if session.TripState.TravelDate != nil {
		prefs.TravelDate = *session.TripState.TravelDate
	}
	if session.TripState.DurationDays != nil {
		prefs.DurationDays = *session.TripState.DurationDays
	}
	if session.TripState.HotelTier != nil {
		prefs.HotelTier = *session.TripState.HotelTier
	}
	if session.TripState.TravelerType != nil {
		prefs.TravelerType = *session.TripState.TravelerType
	}
	if session.TripState.Budget != nil {
		prefs.Budget = *session.TripState.Budget
	}
	if session.TripState.Feedback != nil {
		prefs.Feedback = *session.TripState.Feedback
	}

	matches, err := s.matcher.FindMatches(ctx, prefs)
	if err != nil {
		log.Printf("conversation: matching failed for session %s: %v", session.ID, err)
		resp.Message = replyMatchingFailed
		return resp, nil
	}

	resp.Packages = matches
	if len(matches) == 0 {
		resp.Message = replyNoPackagesFound
	} else {
		resp.Message = replyTripComplete
	}
	return resp, nil
}

// answerChat handles free-form messages: the classifier decides between a
// semantic package search and plain conversation.
func (s *ConversationService) answerChat(ctx context.Context, session *repositories.ConversationSession, message string) (*response_models.ConversationResponse, error) {
	decision := s.agent.Classify(ctx, message, nil)

	resp := &response_models.ConversationResponse{
		SessionID:  session.ID,
		Question:   questionPrompts[session.CurrentQuestion],
		Step:       questionStep(session.CurrentQuestion),
		TotalSteps: len(questionOrder),
		TripState:  &session.TripState,
	}

	if decision.Intent != response_models.IntentSearchPackages {
		catalog, err := s.destinationRepo.ListDestinationNames(ctx)
		if err != nil {
			log.Printf("conversation: could not load destination catalog: %v", err)
		}
		resp.Message = s.chat.Chat(ctx, request_models.ChatRequest{
			Prompt:                message,
			AvailableDestinations: catalog,
		})
		return resp, nil
	}

	hits, err := s.index.Search(ctx, decision.SearchQuery, maxRankedMatches, chatSearchFilter(decision.Filters))
	if err != nil {
		log.Printf("conversation: semantic search failed for session %s: %v", session.ID, err)
		resp.Message = replyMatchingFailed
		return resp, nil
	}

	for _, hit := range hits {
		score := int(hit.Score * 100)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		resp.Packages = append(resp.Packages, response_models.MatchResult{
			PackageID:   hit.PackageID,
			MatchScore:  score,
			MatchReason: "Close match for: " + decision.SearchQuery,
		})
	}

	if len(resp.Packages) == 0 {
		resp.Message = replyNoPackagesFound
	} else {
		resp.Message = replyTripComplete
	}
	return resp, nil
}

// chatSearchFilter maps classifier filters onto the metadata columns the
// vector index can actually filter on; the rest only shape the search query.
func chatSearchFilter(filters response_models.AgentFilters) map[string]string {
	filter := make(map[string]string)
	if filters.Destination != "" {
		filter["destinationName"] = filters.Destination
	}
	if filters.TravelType != "" {
		filter["travelType"] = filters.TravelType
	}
	if filters.Hotel != nil && filters.Hotel.Category != "" {
		filter["starCategory"] = filters.Hotel.Category
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

func mergeTripState(state *request_models.TripState, result response_models.ExtractionResult) {
	if result.Destination != nil {
		state.Destination = result.Destination
	}
	if result.TravelDate != nil {
		state.TravelDate = result.TravelDate
	}
	if result.DurationDays != nil {
		state.DurationDays = result.DurationDays
	}
	if result.HotelTier != nil {
		state.HotelTier = result.HotelTier
	}
	if result.TravelerType != nil {
		state.TravelerType = result.TravelerType
	}
	if result.Budget != nil {
		state.Budget = result.Budget
	}
	if result.Feedback != nil {
		state.Feedback = result.Feedback
	}
}

// nextQuestion returns the first unanswered question after the current one.
// Answering early for later steps skips them; feedback never blocks.
func nextQuestion(session *repositories.ConversationSession) string {
	passedCurrent := false
	for _, q := range questionOrder {
		if !passedCurrent {
			if q == session.CurrentQuestion {
				passedCurrent = true
			}
			continue
		}
		if !questionAnswered(q, session.TripState) {
			return q
		}
	}
	return questionDone
}

func questionAnswered(question string, state request_models.TripState) bool {
	switch question {
	case QuestionDestination:
		return state.Destination != nil
	case QuestionDate:
		return state.TravelDate != nil
	case QuestionDays:
		return state.DurationDays != nil
	case QuestionHotel:
		return state.HotelTier != nil
	case QuestionTravelType:
		return state.TravelerType != nil
	default:
		return false
	}
}

func questionStep(question string) int {
	for i, q := range questionOrder {
		if q == question {
			return i + 1
		}
	}
	return len(questionOrder)
}
