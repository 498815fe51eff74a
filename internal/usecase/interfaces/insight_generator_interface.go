package interfaces

//go:generate mockgen -source=insight_generator_interface.go -destination=mocks/mock_insight_generator_interface.go -package=mocks

import (
	"context"
	"errors"
	"joinerypro/internal/domain/entities"
)

// ErrMalformedInsights is returned by generators whose reply cannot be decoded.
var ErrMalformedInsights = errors.New("malformed insight response")

// IInsightGenerator abstracts the external AI provider (e.g. Gemini).
// The returned insights are passed through as-is.
type IInsightGenerator interface {
	GenerateInsights(ctx context.Context, snapshot entities.LedgerSnapshot) ([]entities.Insight, error)
}
