package usecase

//go:generate mockgen -source=insight_usecase.go -destination=../adapter/http/handlers/mocks/mock_insight_usecase.go -package=mocks

import (
	"context"
	"errors"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
)

// IInsightUseCase asks the AI collaborator for insights on the current ledger.
//
// Failures of the collaborator never surface as errors: the caller gets a
// single WARNING insight describing the degraded mode.
type IInsightUseCase interface {
	GenerateInsights(ctx context.Context) ([]entities.Insight, error)
}

type InsightUseCase struct {
	analytics IAnalyticsUseCase
	generator interfaces.IInsightGenerator
}

var _ IInsightUseCase = (*InsightUseCase)(nil)

// NewInsightUseCase accepts a nil generator when no provider is configured.
func NewInsightUseCase(analytics IAnalyticsUseCase, generator interfaces.IInsightGenerator) *InsightUseCase {
	return &InsightUseCase{analytics: analytics, generator: generator}
}

func (u *InsightUseCase) GenerateInsights(ctx context.Context) ([]entities.Insight, error) {
	if u.generator == nil {
		log.Printf("[insight][usecase] generator not configured")
		return []entities.Insight{{
			Title:       "Configuration Requise",
			Description: "Clé API manquante. Ajoutez GEMINI_API_KEY dans le fichier .env.",
			Category:    entities.InsightWarning,
		}}, nil
	}

	snapshot, err := u.analytics.CombinedSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	insights, err := u.generator.GenerateInsights(ctx, snapshot)
	if errors.Is(err, interfaces.ErrMalformedInsights) {
		log.Printf("[insight][usecase] malformed generator reply err=%v", err)
		return []entities.Insight{{
			Title:       "Erreur d'analyse",
			Description: "La réponse de l'IA n'était pas un JSON valide. Veuillez réessayer.",
			Category:    entities.InsightWarning,
		}}, nil
	}
	if err != nil {
		log.Printf("[insight][usecase] generator failed err=%v", err)
		return []entities.Insight{{
			Title:       "Service indisponible",
			Description: "Une erreur technique est survenue avec l'IA. Vérifiez les journaux.",
			Category:    entities.InsightWarning,
		}}, nil
	}
	if insights == nil {
		insights = []entities.Insight{}
	}
	log.Printf("[insight][usecase] generated count=%d", len(insights))
	return insights, nil
}
