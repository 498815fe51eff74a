package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"joinerypro/internal/domain/entities"
)

func seedLedger(t *testing.T, ctx context.Context) *InventoryUseCase {
	t.Helper()
	repo := newTestLedger(t)
	mustCreateClient(t, repo, "c1")
	mustCreateProject(t, repo, "p1", "c1")
	inv := NewInventoryUseCase(repo)
	inv.now = fixedClock(day(2024, 4, 1))
	if _, err := inv.AddMaterial(ctx, entities.Material{ID: "m1", Name: "Chêne", Unit: "m2", CostPerUnit: 40, CurrentStock: 10}); err != nil {
		t.Fatalf("add material: %v", err)
	}
	if _, err := inv.ConsumeMaterial(ctx, "p1", "m1", 3); err != nil {
		t.Fatalf("consume: %v", err)
	}
	payment := entities.NewIncome("t1", day(2024, 4, 2), 2000, entities.IncomeCategoryProjectPayment, "Solde")
	payment.ProjectID = "p1"
	if _, err := repo.CreateTransaction(ctx, payment); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if _, err := repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-001", ProjectID: "p1", ClientID: "c1", TotalAmount: 2000, Status: entities.DocStatusSent}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return inv
}

func TestBackupUseCase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := seedLedger(t, ctx)

	exporter := NewBackupUseCase(src.repo)
	exporter.now = fixedClock(time.Date(2024, 4, 3, 8, 0, 0, 0, time.UTC))
	raw, err := exporter.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("backup is not json: %v", err)
	}
	if doc["version"] != "1.0" {
		t.Fatalf("expected version 1.0, got %v", doc["version"])
	}
	for _, key := range []string{"clients", "projects", "materials", "materialUsage", "transactions", "quotes", "invoices", "settings"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("missing %q in backup", key)
		}
	}

	dst := newTestLedger(t)
	if err := NewBackupUseCase(dst).ImportJSON(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	before := NewAnalyticsUseCase(src.repo)
	after := NewAnalyticsUseCase(dst)
	finBefore, _ := before.ProjectFinancials(ctx, "p1")
	finAfter, _ := after.ProjectFinancials(ctx, "p1")
	if finBefore != finAfter {
		t.Fatalf("project financials differ after restore: %+v vs %+v", finBefore, finAfter)
	}
	if finAfter.MaterialCost != 120 || finAfter.Income != 2000 {
		t.Fatalf("unexpected financials: %+v", finAfter)
	}
	outBefore, _ := before.OutstandingBalance(ctx)
	outAfter, _ := after.OutstandingBalance(ctx)
	if outBefore != outAfter || outAfter != 2000 {
		t.Fatalf("outstanding differs: %v vs %v", outBefore, outAfter)
	}
	profileBefore, _ := before.ClientProfile(ctx, "c1")
	profileAfter, _ := after.ClientProfile(ctx, "c1")
	if profileBefore != profileAfter {
		t.Fatalf("client profile differs: %+v vs %+v", profileBefore, profileAfter)
	}
}

func TestBackupUseCase_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported version leaves data untouched", func(t *testing.T) {
		repo := newTestLedger(t)
		mustCreateClient(t, repo, "c1")

		err := NewBackupUseCase(repo).Import(ctx, entities.Backup{Version: "2.0"})
		if !errors.Is(err, ErrUnsupportedBackupVersion) {
			t.Fatalf("expected ErrUnsupportedBackupVersion, got %v", err)
		}
		clients, _ := repo.ListClients(ctx)
		if len(clients) != 1 {
			t.Fatalf("expected data untouched, got %+v", clients)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		err := NewBackupUseCase(newTestLedger(t)).ImportJSON(ctx, []byte("{"))
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("missing collections become empty and logo defaults", func(t *testing.T) {
		repo := newTestLedger(t)
		mustCreateClient(t, repo, "c1")

		err := NewBackupUseCase(repo).ImportJSON(ctx, []byte(`{"version":"1.0","settings":{"companyName":"Atelier Z"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clients, _ := repo.ListClients(ctx)
		if len(clients) != 0 {
			t.Fatalf("expected clients replaced, got %+v", clients)
		}
		s, _ := repo.GetSettings(ctx)
		if s.CompanyName != "Atelier Z" || s.LogoURL != entities.DefaultLogoURL {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})
}
