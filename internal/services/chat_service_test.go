package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripscout/internal/models/request_models"
)

func TestChatReturnsFallbackOnFailure(t *testing.T) {
	svc := NewChatService(&stubCompletion{chatErr: errors.New("upstream down")})

	reply := svc.Chat(context.Background(), request_models.ChatRequest{Prompt: "hi"})

	if reply != chatFallbackMessage {
		t.Errorf("expected the fallback message, got %q", reply)
	}
}

func TestChatPassesThroughReply(t *testing.T) {
	svc := NewChatService(&stubCompletion{chatReply: "Goa is lovely in November."})

	reply := svc.Chat(context.Background(), request_models.ChatRequest{
		Prompt:                "when should I visit goa?",
		AvailableDestinations: []string{"Goa", "Bali"},
	})

	if reply != "Goa is lovely in November." {
		t.Errorf("got %q", reply)
	}
}

func TestAnalyzeImageNormalizesDetection(t *testing.T) {
	stub := &stubCompletion{jsonResponse: `{
		"location":"Kuta Beach, Bali",
		"confidence":"high",
		"landmarks":["Kuta Beach"],
		"description":"A crowded surf beach at sunset.",
		"similarLocations":["Goa"]
	}`}
	svc := NewChatService(stub)

	resp, err := svc.AnalyzeImage(context.Background(), request_models.AnalyzeImageRequest{
		ImageBase64:           "aGVsbG8=",
		AvailableDestinations: []string{"Goa", "Bali"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.RawDetectedLocation == nil || *resp.RawDetectedLocation != "Kuta Beach, Bali" {
		t.Errorf("raw detection should be preserved, got %v", resp.RawDetectedLocation)
	}
	if resp.DetectedLocation == nil || *resp.DetectedLocation != "Bali" {
		t.Errorf("detection should normalize to the catalog, got %v", resp.DetectedLocation)
	}
}

func TestAnalyzeImageUnknownLocationLeftUnset(t *testing.T) {
	stub := &stubCompletion{jsonResponse: `{"location":"Santorini","confidence":"medium"}`}
	svc := NewChatService(stub)

	resp, err := svc.AnalyzeImage(context.Background(), request_models.AnalyzeImageRequest{
		ImageBase64:           "aGVsbG8=",
		AvailableDestinations: []string{"Goa", "Bali"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.DetectedLocation != nil {
		t.Errorf("off-catalog detection must stay unset, got %q", *resp.DetectedLocation)
	}
	if resp.RawDetectedLocation == nil || *resp.RawDetectedLocation != "Santorini" {
		t.Errorf("raw detection should still be reported, got %v", resp.RawDetectedLocation)
	}
}

func TestAnalyzeImageUnparseableResponseErrors(t *testing.T) {
	svc := NewChatService(&stubCompletion{jsonResponse: "I see a beach"})

	if _, err := svc.AnalyzeImage(context.Background(), request_models.AnalyzeImageRequest{ImageBase64: "aGVsbG8="}); err == nil {
		t.Fatal("expected an error for unparseable vision output")
	}
}

func TestSynthesizeTruncatesLongText(t *testing.T) {
	stub := &stubCompletion{}
	svc := NewChatService(stub)

	long := strings.Repeat("a", ttsMaxChars+500)
	if _, err := svc.Synthesize(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.lastTTSText) != ttsMaxChars {
		t.Errorf("text should be truncated to %d chars, got %d", ttsMaxChars, len(stub.lastTTSText))
	}
}
