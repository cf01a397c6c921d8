package services

import (
	"context"
	"errors"
	"testing"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
)

var extractCatalog = []string{"Goa", "Bali", "Kerala"}

func TestExtractModelFailureDegrades(t *testing.T) {
	stub := &stubCompletion{jsonErr: errors.New("upstream down")}
	svc := NewExtractorService(stub)

	result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
		UserInput:             "I want to go to Goa",
		CurrentQuestion:       QuestionDestination,
		AvailableDestinations: extractCatalog,
	})

	if err == nil {
		t.Fatal("expected an error when the model call fails")
	}
	if result.Understood || result.Confidence != response_models.ConfidenceLow {
		t.Errorf("degraded result should be not-understood/low, got %+v", result)
	}
}

func TestExtractMalformedJSONDegradesWithoutError(t *testing.T) {
	stub := &stubCompletion{jsonResponse: "this is not json at all"}
	svc := NewExtractorService(stub)

	result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
		UserInput:             "goa please",
		CurrentQuestion:       QuestionDestination,
		AvailableDestinations: extractCatalog,
	})

	if err != nil {
		t.Fatalf("parse failures must not surface as errors: %v", err)
	}
	if result.Understood || result.Confidence != response_models.ConfidenceLow {
		t.Errorf("expected not-understood/low, got %+v", result)
	}
}

func TestExtractNormalizesAbbreviatedDestination(t *testing.T) {
	stub := &stubCompletion{
		jsonResponse: `{"destination":"bli","confidence":"high","understood":true}`,
	}
	svc := NewExtractorService(stub)

	result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
		UserInput:             "bli",
		CurrentQuestion:       QuestionDestination,
		AvailableDestinations: extractCatalog,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Destination == nil || *result.Destination != "Bali" {
		t.Errorf("expected destination Bali, got %v", result.Destination)
	}
	if !result.Understood || result.Confidence != response_models.ConfidenceHigh {
		t.Errorf("expected understood/high, got %+v", result)
	}
}

func TestExtractRejectsOffCatalogDestination(t *testing.T) {
	stub := &stubCompletion{
		jsonResponse: `{"destination":"Reykjavik","confidence":"high","understood":true}`,
	}
	svc := NewExtractorService(stub)

	result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
		UserInput:             "reykjavik",
		CurrentQuestion:       QuestionDestination,
		AvailableDestinations: extractCatalog,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Destination != nil {
		t.Errorf("off-catalog destination must be nulled, got %q", *result.Destination)
	}
	if result.Understood {
		t.Error("destination question with no usable destination must be not-understood")
	}
}

func TestExtractSanitizesDateAndDuration(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		question     string
		wantDate     *string
		wantDays     *int
		wantUnderstd bool
	}{
		{
			name:         "year-month gets mid-month default",
			response:     `{"travelDate":"2026-10","confidence":"medium","understood":true}`,
			question:     QuestionDate,
			wantDate:     strPtr("2026-10-15"),
			wantUnderstd: true,
		},
		{
			name:         "garbage date nulled on date question",
			response:     `{"travelDate":"whenever","confidence":"medium","understood":true}`,
			question:     QuestionDate,
			wantUnderstd: false,
		},
		{
			name:         "non-positive duration nulled",
			response:     `{"durationDays":-2,"confidence":"medium","understood":true}`,
			question:     QuestionDays,
			wantUnderstd: false,
		},
		{
			name:         "valid duration kept",
			response:     `{"durationDays":5,"confidence":"medium","understood":true}`,
			question:     QuestionDays,
			wantDays:     intPtr(5),
			wantUnderstd: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExtractorService(&stubCompletion{jsonResponse: tt.response})

			result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
				UserInput:             "whatever the user said",
				CurrentQuestion:       tt.question,
				AvailableDestinations: extractCatalog,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !equalStrPtr(result.TravelDate, tt.wantDate) {
				t.Errorf("travelDate = %v, want %v", deref(result.TravelDate), deref(tt.wantDate))
			}
			if !equalIntPtr(result.DurationDays, tt.wantDays) {
				t.Errorf("durationDays = %v, want %v", result.DurationDays, tt.wantDays)
			}
			if result.Understood != tt.wantUnderstd {
				t.Errorf("understood = %v, want %v", result.Understood, tt.wantUnderstd)
			}
		})
	}
}

func TestExtractRejectsOffEnumValues(t *testing.T) {
	tests := []struct {
		name     string
		response string
		question string
		check    func(t *testing.T, result response_models.ExtractionResult)
	}{
		{
			name:     "invented hotel tier nulled",
			response: `{"hotelTier":"7-star","confidence":"high","understood":true}`,
			question: QuestionHotel,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.HotelTier != nil {
					t.Errorf("off-enum tier must be nulled, got %q", *result.HotelTier)
				}
				if result.Understood {
					t.Error("hotel question with no usable tier must be not-understood")
				}
			},
		},
		{
			name:     "unmapped tier word nulled",
			response: `{"hotelTier":"luxury","confidence":"high","understood":true}`,
			question: QuestionHotel,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.HotelTier != nil {
					t.Errorf("raw tier word must be nulled, got %q", *result.HotelTier)
				}
			},
		},
		{
			name:     "valid tier kept",
			response: `{"hotelTier":"4-star","confidence":"high","understood":true}`,
			question: QuestionHotel,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.HotelTier == nil || *result.HotelTier != "4-star" {
					t.Errorf("valid tier must survive, got %v", result.HotelTier)
				}
				if !result.Understood {
					t.Error("valid tier should stay understood")
				}
			},
		},
		{
			name:     "invented traveler type nulled",
			response: `{"travelerType":"entourage","confidence":"high","understood":true}`,
			question: QuestionTravelType,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.TravelerType != nil {
					t.Errorf("off-enum traveler type must be nulled, got %q", *result.TravelerType)
				}
				if result.Understood {
					t.Error("travelType question with no usable value must be not-understood")
				}
			},
		},
		{
			name:     "valid traveler type kept",
			response: `{"travelerType":"friends","confidence":"high","understood":true}`,
			question: QuestionTravelType,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.TravelerType == nil || *result.TravelerType != "friends" {
					t.Errorf("valid traveler type must survive, got %v", result.TravelerType)
				}
			},
		},
		{
			name:     "off-enum tier on another question does not block",
			response: `{"destination":"Goa","hotelTier":"palatial","confidence":"high","understood":true}`,
			question: QuestionDestination,
			check: func(t *testing.T, result response_models.ExtractionResult) {
				if result.HotelTier != nil {
					t.Errorf("off-enum tier must still be nulled, got %q", *result.HotelTier)
				}
				if !result.Understood {
					t.Error("the destination answer itself was understood")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExtractorService(&stubCompletion{jsonResponse: tt.response})

			result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
				UserInput:             "whatever the user said",
				CurrentQuestion:       tt.question,
				AvailableDestinations: extractCatalog,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, result)
		})
	}
}

func TestExtractDefaultsMissingConfidence(t *testing.T) {
	svc := NewExtractorService(&stubCompletion{jsonResponse: `{"understood":true}`})

	result, err := svc.Extract(context.Background(), request_models.ExtractRequest{
		UserInput:       "hm",
		CurrentQuestion: QuestionGeneral,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Confidence != response_models.ConfidenceLow {
		t.Errorf("missing confidence should default to low, got %q", result.Confidence)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
