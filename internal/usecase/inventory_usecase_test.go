package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"joinerypro/internal/adapter/persistence/kvstore"
	"joinerypro/internal/adapter/persistence/repository"
	"joinerypro/internal/domain/entities"
	mock_interfaces "joinerypro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_AddMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid name", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.AddMaterial(ctx, entities.Material{Name: "  "})
		if !errors.Is(err, ErrInvalidMaterialName) {
			t.Fatalf("expected ErrInvalidMaterialName, got %v", err)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.AddMaterial(ctx, entities.Material{Name: "MDF", CurrentStock: -1})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("opening stock is booked as one expense", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)

		m, err := uc.AddMaterial(ctx, entities.Material{Name: "MDF 18mm", Unit: "plaque", CostPerUnit: 100, CurrentStock: 5, Supplier: "Bois Maroc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID == "" {
			t.Fatalf("expected generated id")
		}

		txs, _ := repo.ListTransactions(ctx)
		if len(txs) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(txs))
		}
		tx := txs[0]
		if tx.Type != entities.TransactionTypeExpense || tx.Category != string(entities.ExpenseCategoryRestockInventory) {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
		if tx.Amount != 500 {
			t.Fatalf("expected 500, got %v", tx.Amount)
		}
		if tx.Description != "Achat Stock: MDF 18mm (5 plaque) - Fournisseur: Bois Maroc" {
			t.Fatalf("unexpected description: %q", tx.Description)
		}
	})

	t.Run("expense save failure stores nothing", func(t *testing.T) {
		store := &failingStore{MemoryStore: kvstore.NewMemoryStore(), failKey: repository.KeyTransactions}
		repo := newLedgerOn(t, store)
		uc := NewInventoryUseCase(repo)
		m := entities.Material{ID: "m1", Name: "Contreplaqué", Unit: "plaque", CostPerUnit: 40, CurrentStock: 3}

		if _, err := uc.AddMaterial(ctx, m); err == nil {
			t.Fatalf("expected save error")
		}
		materials, _ := repo.ListMaterials(ctx)
		txs, _ := repo.ListTransactions(ctx)
		if len(materials) != 0 || len(txs) != 0 {
			t.Fatalf("expected nothing stored, got materials=%d transactions=%d", len(materials), len(txs))
		}

		store.failKey = ""
		if _, err := uc.AddMaterial(ctx, m); err != nil {
			t.Fatalf("retry should succeed, got %v", err)
		}
		materials, _ = repo.ListMaterials(ctx)
		txs, _ = repo.ListTransactions(ctx)
		if len(materials) != 1 || len(txs) != 1 {
			t.Fatalf("expected one material and one expense, got materials=%d transactions=%d", len(materials), len(txs))
		}
	})

	t.Run("expense failure removes the created material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewInventoryUseCase(repo)
		m := entities.Material{ID: "m1", Name: "MDF", Unit: "plaque", CostPerUnit: 10, CurrentStock: 2}

		repo.EXPECT().WithLock(gomock.Any()).DoAndReturn(func(fn func() error) error { return fn() })
		repo.EXPECT().GetMaterialByID(gomock.Any(), "m1").Return(entities.Material{}, nil)
		gomock.InOrder(
			repo.EXPECT().CreateMaterial(gomock.Any(), m).Return(m, nil),
			repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("quota")),
			repo.EXPECT().RemoveMaterial(gomock.Any(), "m1").Return(nil),
		)

		if _, err := uc.AddMaterial(ctx, m); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)
		if _, err := uc.AddMaterial(ctx, entities.Material{ID: "m1", Name: "MDF", Unit: "plaque"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.AddMaterial(ctx, entities.Material{ID: "m1", Name: "Chêne", Unit: "m2", CostPerUnit: 80, CurrentStock: 1})
		if !errors.Is(err, ErrMaterialIDTaken) {
			t.Fatalf("expected ErrMaterialIDTaken, got %v", err)
		}
		txs, _ := repo.ListTransactions(ctx)
		if len(txs) != 0 {
			t.Fatalf("rejected material must not book an expense, got %+v", txs)
		}
	})

	t.Run("zero cost records no expense", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)

		if _, err := uc.AddMaterial(ctx, entities.Material{Name: "Chutes", Unit: "kg", CostPerUnit: 0, CurrentStock: 20}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		txs, _ := repo.ListTransactions(ctx)
		if len(txs) != 0 {
			t.Fatalf("expected no transaction, got %+v", txs)
		}
	})
}

func TestInventoryUseCase_RestockMaterial(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*InventoryUseCase, entities.Material) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)
		m, err := repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Chêne", Unit: "m2", CostPerUnit: 50, CurrentStock: 10})
		if err != nil {
			t.Fatalf("create material: %v", err)
		}
		return uc, m
	}

	t.Run("lower cost keeps the stored cost", func(t *testing.T) {
		uc, _ := setup(t)
		res, err := uc.RestockMaterial(ctx, "m1", 4, 40, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Material.CurrentStock != 14 || res.Material.CostPerUnit != 50 {
			t.Fatalf("unexpected material: %+v", res.Material)
		}
		if res.Expense.Amount != 160 {
			t.Fatalf("expected expense 160, got %v", res.Expense.Amount)
		}
		if res.Expense.PaymentMethod != entities.PaymentMethodCash {
			t.Fatalf("expected CASH, got %q", res.Expense.PaymentMethod)
		}
	})

	t.Run("higher cost replaces the stored cost", func(t *testing.T) {
		uc, _ := setup(t)
		res, err := uc.RestockMaterial(ctx, "m1", 2, 65, "Scierie Atlas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Material.CostPerUnit != 65 || res.Material.Supplier != "Scierie Atlas" {
			t.Fatalf("unexpected material: %+v", res.Material)
		}
		if !strings.HasPrefix(res.Expense.Description, "Réapprovisionnement: Chêne (+2 m2 @ 65 MAD)") {
			t.Fatalf("unexpected description: %q", res.Expense.Description)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.RestockMaterial(ctx, "missing", 1, 1, "")
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("non positive quantity", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.RestockMaterial(ctx, "m1", 0, 10, "")
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestInventoryUseCase_ConsumeMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("over consumption is rejected and stock is unchanged", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)
		_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Vis", Unit: "boîte", CostPerUnit: 3, CurrentStock: 2})

		_, err := uc.ConsumeMaterial(ctx, "p1", "m1", 2.5)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		m, _ := repo.GetMaterialByID(ctx, "m1")
		if m.CurrentStock != 2 {
			t.Fatalf("expected stock 2, got %v", m.CurrentStock)
		}
		usage, _ := repo.ListMaterialUsage(ctx)
		if len(usage) != 0 {
			t.Fatalf("expected no usage, got %+v", usage)
		}
	})

	t.Run("consuming the whole stock leaves zero", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)
		_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Colle", Unit: "L", CostPerUnit: 12, CurrentStock: 0.3})

		if _, err := uc.ConsumeMaterial(ctx, "p1", "m1", 0.1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ConsumeMaterial(ctx, "p1", "m1", 0.2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, _ := repo.GetMaterialByID(ctx, "m1")
		if m.CurrentStock != 0 {
			t.Fatalf("expected stock 0, got %v", m.CurrentStock)
		}
	})

	t.Run("usage keeps the cost at time of use", func(t *testing.T) {
		repo := newTestLedger(t)
		uc := NewInventoryUseCase(repo)
		uc.now = fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Chêne", Unit: "m2", CostPerUnit: 50, CurrentStock: 10})

		usage, err := uc.ConsumeMaterial(ctx, "p1", "m1", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.RestockMaterial(ctx, "m1", 5, 80, ""); err != nil {
			t.Fatalf("restock: %v", err)
		}

		stored, _ := repo.ListMaterialUsage(ctx)
		if len(stored) != 1 || stored[0].ID != usage.ID {
			t.Fatalf("unexpected usage: %+v", stored)
		}
		if stored[0].CostAtTimeOfUse != 50 || stored[0].Cost() != 150 {
			t.Fatalf("expected frozen cost 50, got %+v", stored[0])
		}
		m, _ := repo.GetMaterialByID(ctx, "m1")
		if m.CostPerUnit != 80 || m.CurrentStock != 12 {
			t.Fatalf("unexpected material: %+v", m)
		}
		txs, _ := repo.ListTransactions(ctx)
		if len(txs) != 1 {
			t.Fatalf("consumption must not record a transaction, got %+v", txs)
		}
	})

	t.Run("usage append failure restores the material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		original := entities.Material{ID: "m1", Name: "Vis", CostPerUnit: 3, CurrentStock: 10}
		repo.EXPECT().WithLock(gomock.Any()).DoAndReturn(func(fn func() error) error { return fn() })
		repo.EXPECT().GetMaterialByID(gomock.Any(), "m1").Return(original, nil)
		gomock.InOrder(
			repo.EXPECT().UpdateMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, m entities.Material) (entities.Material, error) {
					if m.CurrentStock != 6 {
						t.Fatalf("expected decremented stock 6, got %v", m.CurrentStock)
					}
					return m, nil
				},
			),
			repo.EXPECT().CreateMaterialUsage(gomock.Any(), gomock.Any()).Return(entities.MaterialUsage{}, errors.New("disk full")),
			repo.EXPECT().UpdateMaterial(gomock.Any(), original).Return(original, nil),
		)

		_, err := uc.ConsumeMaterial(ctx, "p1", "m1", 4)
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Fatalf("expected disk full error, got %v", err)
		}
	})

	t.Run("missing project id", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.ConsumeMaterial(ctx, " ", "m1", 1)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}

func TestInventoryUseCase_AdjustStockAndLowStock(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	uc := NewInventoryUseCase(repo)
	_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Charnières", CurrentStock: 40, MinStockLevel: 10})
	_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m2", Name: "Poignées", CurrentStock: 3, MinStockLevel: 5})

	if _, err := uc.AdjustStock(ctx, "m1", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := uc.AdjustStock(ctx, "nope", 1); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}

	m, err := uc.AdjustStock(ctx, "m1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CurrentStock != 10 {
		t.Fatalf("expected stock 10, got %v", m.CurrentStock)
	}

	low, err := uc.LowStockMaterials(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected both materials at or below minimum, got %+v", low)
	}
	txs, _ := repo.ListTransactions(ctx)
	if len(txs) != 0 {
		t.Fatalf("adjustment must not record a transaction, got %+v", txs)
	}
}
