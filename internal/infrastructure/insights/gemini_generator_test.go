package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"

	"google.golang.org/genai"
)

type fakeModels struct {
	reply  string
	err    error
	model  string
	prompt string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "raw array", text: `[{"title":"Stock bas","description":"x","type":"WARNING"}]`, want: 1},
		{name: "fenced", text: "```json\n[{\"title\":\"a\",\"description\":\"b\",\"type\":\"INFO\"},{\"title\":\"c\",\"description\":\"d\",\"type\":\"OPPORTUNITY\",\"metric\":\"+12%\"}]\n```", want: 2},
		{name: "empty", text: "   ", want: 0},
		{name: "prose", text: "Voici mes recommandations", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsights(tt.text)
			if tt.wantErr {
				if !errors.Is(err, interfaces.ErrMalformedInsights) {
					t.Fatalf("expected ErrMalformedInsights, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != tt.want {
				t.Fatalf("expected %d insights, got %#v", tt.want, got)
			}
		})
	}
}

func TestGenerateInsights(t *testing.T) {
	fake := &fakeModels{reply: `[{"title":"Projet rentable","description":"ok","type":"INFO","metric":"40%"}]`}
	g := &GeminiGenerator{models: fake, model: DefaultModel}

	snapshot := entities.LedgerSnapshot{
		Inventory: []entities.Material{{ID: "m1", Name: "Chêne massif"}},
	}
	got, err := g.GenerateInsights(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Category != entities.InsightInfo || got[0].Metric != "40%" {
		t.Fatalf("unexpected insights: %+v", got)
	}
	if fake.model != DefaultModel {
		t.Fatalf("expected model %s, got %s", DefaultModel, fake.model)
	}
	if !strings.Contains(fake.prompt, "Chêne massif") || !strings.Contains(fake.prompt, "French") {
		t.Fatalf("prompt must embed the snapshot, got %q", fake.prompt)
	}
}

func TestGenerateInsights_APIError(t *testing.T) {
	fake := &fakeModels{err: errors.New("quota exceeded")}
	g := &GeminiGenerator{models: fake, model: DefaultModel}

	if _, err := g.GenerateInsights(context.Background(), entities.LedgerSnapshot{}); !errors.Is(err, fake.err) {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestNewGeminiGenerator_MissingKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), " ", ""); !errors.Is(err, ErrMissingGeminiAPIKey) {
		t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
	}
}
