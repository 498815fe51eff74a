package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"joinerypro/internal/adapter/persistence/kvstore"
	"joinerypro/internal/domain/entities"
	mock_interfaces "joinerypro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewLedgerRepository_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLedgerRepository(ctx, kvstore.NewMemoryStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clients, _ := repo.ListClients(ctx)
	if clients == nil || len(clients) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", clients)
	}
	s, _ := repo.GetSettings(ctx)
	if s.CompanyName != "Fun Design F&Z" || s.LogoURL != entities.DefaultLogoURL {
		t.Fatalf("unexpected default settings: %+v", s)
	}
}

func TestNewLedgerRepository_LoadsPersistedCollections(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	raw, _ := json.Marshal([]entities.Client{{ID: "c1", Name: "Atelier"}})
	_ = store.Save(ctx, KeyClients, raw)
	_ = store.Save(ctx, KeySettings, []byte(`{"companyName":"Atelier Z"}`))

	repo, err := NewLedgerRepository(ctx, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := repo.GetClientByID(ctx, "c1")
	if c.Name != "Atelier" {
		t.Fatalf("unexpected client: %+v", c)
	}

	s, _ := repo.GetSettings(ctx)
	if s.LogoURL != entities.DefaultLogoURL {
		t.Fatalf("expected default logo, got %q", s.LogoURL)
	}
	persisted, _ := store.Load(ctx, KeySettings)
	var stored entities.AppSettings
	_ = json.Unmarshal(persisted, &stored)
	if stored.LogoURL != entities.DefaultLogoURL {
		t.Fatalf("defaulted logo must be written back, got %s", persisted)
	}
}

func TestNewLedgerRepository_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	_ = store.Save(ctx, KeyProjects, []byte("not json"))

	if _, err := NewLedgerRepository(ctx, store); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLedgerRepository_WritesThrough(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo, _ := NewLedgerRepository(ctx, store)

	if _, err := repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "MDF", CurrentStock: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.UpdateMaterial(ctx, entities.Material{ID: "m1", Name: "MDF", CurrentStock: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := store.Load(ctx, KeyMaterials)
	var stored []entities.Material
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("stored value is not a json array: %v", err)
	}
	if len(stored) != 1 || stored[0].CurrentStock != 2 {
		t.Fatalf("unexpected stored materials: %+v", stored)
	}

	reopened, _ := NewLedgerRepository(ctx, store)
	m, _ := reopened.GetMaterialByID(ctx, "m1")
	if m.CurrentStock != 2 {
		t.Fatalf("expected reload to see stock 2, got %+v", m)
	}
}

func TestLedgerRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo, _ := NewLedgerRepository(ctx, store)

	got, err := repo.UpdateQuote(ctx, entities.Quote{ID: "DEV-2024-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero quote, got %+v", got)
	}
	quotes, _ := repo.ListQuotes(ctx)
	if len(quotes) != 0 {
		t.Fatalf("collection must be untouched, got %+v", quotes)
	}
	for _, k := range store.Keys() {
		if k == KeyQuotes {
			t.Fatalf("nothing should have been flushed")
		}
	}
}

func TestLedgerRepository_RemoveMaterial(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo, _ := NewLedgerRepository(ctx, store)
	_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "MDF"})
	_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m2", Name: "Chêne"})

	if err := repo.RemoveMaterial(ctx, "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.RemoveMaterial(ctx, "ghost"); err != nil {
		t.Fatalf("unknown id should be ignored, got %v", err)
	}

	reloaded, _ := NewLedgerRepository(ctx, store)
	materials, _ := reloaded.ListMaterials(ctx)
	if len(materials) != 1 || materials[0].ID != "m2" {
		t.Fatalf("expected only m2 persisted, got %+v", materials)
	}
}

func TestLedgerRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := NewLedgerRepository(ctx, kvstore.NewMemoryStore())
	items := []entities.DocumentItem{{Description: "Plan de travail", Quantity: 1, UnitPrice: 900, Total: 900}}
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-001", Items: items, TotalAmount: 900})

	items[0].Description = "mutated by caller"
	list, _ := repo.ListInvoices(ctx)
	list[0].Items[0].Total = 1
	list[0].TotalAmount = 1

	inv, _ := repo.GetInvoiceByID(ctx, "FAC-2024-001")
	if inv.TotalAmount != 900 || inv.Items[0].Total != 900 || inv.Items[0].Description != "Plan de travail" {
		t.Fatalf("repository state leaked to caller: %+v", inv)
	}
}

func TestLedgerRepository_FailedSaveKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
	ctx := context.Background()

	kv.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	kv.EXPECT().Save(gomock.Any(), KeyTransactions, gomock.Any()).Return(errors.New("quota"))

	repo, err := NewLedgerRepository(ctx, kv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = repo.CreateTransaction(ctx, entities.NewIncome("t1", time.Now(), 10, entities.IncomeCategoryOther, ""))
	if err == nil {
		t.Fatalf("expected save error")
	}
	txs, _ := repo.ListTransactions(ctx)
	if len(txs) != 0 {
		t.Fatalf("failed create must not be visible, got %+v", txs)
	}
}

func TestLedgerRepository_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo, _ := NewLedgerRepository(ctx, store)
	_, _ = repo.CreateClient(ctx, entities.Client{ID: "old"})

	b := entities.Backup{
		Version:  entities.BackupVersion,
		Clients:  []entities.Client{{ID: "c1", Name: "Nouveau"}},
		Projects: []entities.Project{{ID: "p1", ClientID: "c1"}},
		Settings: entities.AppSettings{CompanyName: "Atelier Z", LogoURL: "/z.png"},
	}
	if err := repo.Restore(ctx, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Clients[0].Name = "mutated"

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Clients) != 1 || snap.Clients[0].Name != "Nouveau" {
		t.Fatalf("unexpected clients: %+v", snap.Clients)
	}
	if snap.Materials == nil || len(snap.Materials) != 0 {
		t.Fatalf("missing collections must restore as empty, got %#v", snap.Materials)
	}
	if snap.Settings.CompanyName != "Atelier Z" {
		t.Fatalf("unexpected settings: %+v", snap.Settings)
	}

	raw, _ := store.Load(ctx, KeyMaterials)
	if string(raw) != "[]" {
		t.Fatalf("expected empty array persisted, got %q", raw)
	}
}

func TestLedgerRepository_WithLock(t *testing.T) {
	repo, _ := NewLedgerRepository(context.Background(), kvstore.NewMemoryStore())
	sentinel := errors.New("stop")
	called := false
	err := repo.WithLock(func() error {
		called = true
		// Per-call methods must stay usable while the write lock is held.
		_, err := repo.CreateClient(context.Background(), entities.Client{ID: "c1"})
		if err != nil {
			return err
		}
		return sentinel
	})
	if !called || !errors.Is(err, sentinel) {
		t.Fatalf("expected fn error, got %v", err)
	}
}
