package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const DefaultModel = "gemini-2.0-flash"

const promptTemplate = `You are a financial analyst for a joinery / interior fitting business.
Analyse the following JSON data describing projects (with their financials), inventory and cash flow.

Data: %s

Provide 4 to 6 specific insights for the business owner.

Context:
- Projects in ESTIMATE status with income are usually deposits. This is normal and good for cash flow.
- Focus on COMPLETED projects for final profitability.

Focus on:
1. Project profitability (which jobs made money, which lost money).
2. Material cost and waste.
3. Cash flow warnings.
4. Operational efficiency.

Answer in French. Each description is 2 to 3 sentences.

Return ONLY a raw JSON array, no markdown. Schema:
[{"title": "string", "description": "string", "type": "WARNING" | "OPPORTUNITY" | "INFO", "metric": "string (optional)"}]`

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements IInsightGenerator with the Gemini API.
type GeminiGenerator struct {
	models contentGenerator
	model  string
}

var _ interfaces.IInsightGenerator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[insight][gemini] client init failed err=%v", err)
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	log.Printf("[insight][gemini] client initialized model=%s", model)
	return &GeminiGenerator{models: client.Models, model: model}, nil
}

func (g *GeminiGenerator) GenerateInsights(ctx context.Context, snapshot entities.LedgerSnapshot) ([]entities.Insight, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(promptTemplate, data)), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.5),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	return parseInsights(resp.Text())
}

// parseInsights decodes the model reply, tolerating markdown code fences.
func parseInsights(text string) ([]entities.Insight, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entities.Insight{}, nil
	}
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var out []entities.Insight
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrMalformedInsights, err)
	}
	return out, nil
}
