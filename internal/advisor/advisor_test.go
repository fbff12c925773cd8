package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestStaticAdvisor(t *testing.T) {
	out, err := Static{}.Advise(context.Background(), "Monthly spend: ₹100.00.\n", "where can I save?")
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !strings.Contains(out, "Monthly spend") {
		t.Fatalf("expected summary echoed, got %q", out)
	}

	_, err = Static{}.Advise(context.Background(), "summary", "   ")
	if !errors.Is(err, ErrAdvisoryUnavailable) {
		t.Fatalf("expected ErrAdvisoryUnavailable, got %v", err)
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-1.5-flash", 0)
	if !errors.Is(err, ErrAdvisoryUnavailable) {
		t.Fatalf("expected ErrAdvisoryUnavailable, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	if got := extractText(nil); got != "" {
		t.Fatalf("nil response: %q", got)
	}
	if got := extractText(&genai.GenerateContentResponse{}); got != "" {
		t.Fatalf("no candidates: %q", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Cut the "), genai.Text("gym plan.")},
			},
		}},
	}
	if got := extractText(resp); got != "Cut the gym plan." {
		t.Fatalf("got %q", got)
	}
}
