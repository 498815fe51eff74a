package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	mock_interfaces "joinerypro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInsightUseCase_GenerateInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("no generator configured", func(t *testing.T) {
		uc := NewInsightUseCase(NewAnalyticsUseCase(newTestLedger(t)), nil)
		res, err := uc.GenerateInsights(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Title != "Configuration Requise" || res[0].Category != entities.InsightWarning {
			t.Fatalf("unexpected insights: %+v", res)
		}
	})

	t.Run("malformed reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIInsightGenerator(ctrl)
		uc := NewInsightUseCase(NewAnalyticsUseCase(newTestLedger(t)), gen)

		gen.EXPECT().GenerateInsights(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: eof", interfaces.ErrMalformedInsights))

		res, err := uc.GenerateInsights(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Title != "Erreur d'analyse" {
			t.Fatalf("unexpected insights: %+v", res)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIInsightGenerator(ctrl)
		uc := NewInsightUseCase(NewAnalyticsUseCase(newTestLedger(t)), gen)

		gen.EXPECT().GenerateInsights(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded"))

		res, err := uc.GenerateInsights(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Title != "Service indisponible" {
			t.Fatalf("unexpected insights: %+v", res)
		}
	})

	t.Run("insights pass through with the snapshot", func(t *testing.T) {
		ctx := context.Background()
		repo := newTestLedger(t)
		mustCreateClient(t, repo, "c1")
		mustCreateProject(t, repo, "p1", "c1")
		_, _ = repo.CreateTransaction(ctx, entities.NewIncome("t1", day(2024, 1, 1), 300, entities.IncomeCategoryProjectPayment, ""))

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIInsightGenerator(ctrl)
		uc := NewInsightUseCase(NewAnalyticsUseCase(repo), gen)

		want := []entities.Insight{{Title: "Marge", Description: "Bonne marge.", Category: entities.InsightOpportunity, Metric: "+12%"}}
		gen.EXPECT().GenerateInsights(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, snap entities.LedgerSnapshot) ([]entities.Insight, error) {
				if len(snap.Projects) != 1 || snap.CashFlow.TotalIncome != 300 {
					t.Fatalf("unexpected snapshot: %+v", snap)
				}
				return want, nil
			},
		)

		res, err := uc.GenerateInsights(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0] != want[0] {
			t.Fatalf("unexpected insights: %+v", res)
		}
	})
}
