package usecase

//go:generate mockgen -source=inventory_usecase.go -destination=../adapter/http/handlers/mocks/mock_inventory_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrMaterialNotFound    = errors.New("material not found")
	ErrInvalidMaterialID   = errors.New("invalid material id")
	ErrInvalidMaterialName = errors.New("invalid material name")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidUnitCost     = errors.New("invalid unit cost")
	ErrMaterialIDTaken     = errors.New("material id already exists")
)

// RestockResult carries the updated material and the expense it generated.
type RestockResult struct {
	Material entities.Material    `json:"material"`
	Expense  entities.Transaction `json:"expense"`
}

// IInventoryUseCase is the inventory ledger.
//
//   - AddMaterial records the opening stock as a RESTOCK_INVENTORY expense.
//   - RestockMaterial raises stock, ratchets the unit cost up and records an expense.
//   - ConsumeMaterial lowers stock and freezes the unit cost in a MaterialUsage.
//     It never records a transaction: material cost reaches projects through usage only.

type IInventoryUseCase interface {
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	GetMaterial(ctx context.Context, id string) (entities.Material, error)
	LowStockMaterials(ctx context.Context) ([]entities.Material, error)
	AddMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	RestockMaterial(ctx context.Context, materialID string, quantity, unitCost float64, supplier string) (RestockResult, error)
	ConsumeMaterial(ctx context.Context, projectID, materialID string, quantity float64) (entities.MaterialUsage, error)
	AdjustStock(ctx context.Context, materialID string, newQuantity float64) (entities.Material, error)
	ListMaterialUsage(ctx context.Context, projectID string) ([]entities.MaterialUsage, error)
}

type InventoryUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.ILedgerRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, now: systemClock}
}

func (u *InventoryUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return u.repo.ListMaterials(ctx)
}

func (u *InventoryUseCase) GetMaterial(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	m, err := u.repo.GetMaterialByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *InventoryUseCase) LowStockMaterials(ctx context.Context) ([]entities.Material, error) {
	all, err := u.repo.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entities.Material, 0)
	for _, m := range all {
		if m.IsLowStock() {
			low = append(low, m)
		}
	}
	return low, nil
}

func (u *InventoryUseCase) AddMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}
	if m.CurrentStock < 0 || m.MinStockLevel < 0 {
		return entities.Material{}, ErrInvalidQuantity
	}
	if m.CostPerUnit < 0 {
		return entities.Material{}, ErrInvalidUnitCost
	}
	if strings.TrimSpace(m.ID) == "" {
		m.ID = newID()
	}

	var created entities.Material
	err := u.repo.WithLock(func() error {
		existing, err := u.repo.GetMaterialByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrMaterialIDTaken
		}
		created, err = u.repo.CreateMaterial(ctx, m)
		if err != nil {
			return err
		}
		if m.CostPerUnit <= 0 || m.CurrentStock <= 0 {
			return nil
		}

		desc := fmt.Sprintf("Achat Stock: %s (%s %s)", m.Name, formatQty(m.CurrentStock), m.Unit)
		if m.Supplier != "" {
			desc += " - Fournisseur: " + m.Supplier
		}
		tx := entities.NewExpense(newID(), u.now(), mul(m.CostPerUnit, m.CurrentStock), entities.ExpenseCategoryRestockInventory, desc)
		if _, err := u.repo.CreateTransaction(ctx, tx); err != nil {
			if rbErr := u.repo.RemoveMaterial(ctx, created.ID); rbErr != nil {
				log.Printf("[inventory][usecase] add material rollback failed material_id=%s err=%v", created.ID, rbErr)
			}
			return fmt.Errorf("record opening stock expense: %w", err)
		}
		log.Printf("[inventory][usecase] opening stock expense material_id=%s amount=%.2f", m.ID, tx.Amount)
		return nil
	})
	if err != nil {
		log.Printf("[inventory][usecase] add material failed material_id=%s err=%v", m.ID, err)
		return entities.Material{}, err
	}
	log.Printf("[inventory][usecase] material added material_id=%s stock=%v cost=%v", created.ID, created.CurrentStock, created.CostPerUnit)
	return created, nil
}

// RestockMaterial adds stock. The stored unit cost becomes max(old, unitCost),
// while the expense is booked at quantity*unitCost.
func (u *InventoryUseCase) RestockMaterial(ctx context.Context, materialID string, quantity, unitCost float64, supplier string) (RestockResult, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return RestockResult{}, ErrInvalidMaterialID
	}
	if quantity <= 0 {
		return RestockResult{}, ErrInvalidQuantity
	}
	if unitCost < 0 {
		return RestockResult{}, ErrInvalidUnitCost
	}
	supplier = strings.TrimSpace(supplier)

	var res RestockResult
	err := u.repo.WithLock(func() error {
		m, err := u.repo.GetMaterialByID(ctx, materialID)
		if err != nil {
			return err
		}
		if m.ID == "" {
			return ErrMaterialNotFound
		}

		updated := m
		updated.CurrentStock = m.CurrentStock + quantity
		updated.CostPerUnit = max(m.CostPerUnit, unitCost)
		if supplier != "" {
			updated.Supplier = supplier
		}
		if _, err := u.repo.UpdateMaterial(ctx, updated); err != nil {
			return err
		}

		desc := fmt.Sprintf("Réapprovisionnement: %s (+%s %s @ %s MAD)", m.Name, formatQty(quantity), m.Unit, formatQty(unitCost))
		if supplier != "" {
			desc += " - Fournisseur: " + supplier
		}
		tx := entities.NewExpense(newID(), u.now(), mul(quantity, unitCost), entities.ExpenseCategoryRestockInventory, desc)
		tx.PaymentMethod = entities.PaymentMethodCash
		if _, err := u.repo.CreateTransaction(ctx, tx); err != nil {
			if _, rbErr := u.repo.UpdateMaterial(ctx, m); rbErr != nil {
				log.Printf("[inventory][usecase] restock rollback failed material_id=%s err=%v", m.ID, rbErr)
			}
			return fmt.Errorf("record restock expense: %w", err)
		}

		res = RestockResult{Material: updated, Expense: tx}
		return nil
	})
	if err != nil {
		log.Printf("[inventory][usecase] restock failed material_id=%s qty=%v err=%v", materialID, quantity, err)
		return RestockResult{}, err
	}
	log.Printf("[inventory][usecase] restocked material_id=%s stock=%v cost=%v expense=%.2f", materialID, res.Material.CurrentStock, res.Material.CostPerUnit, res.Expense.Amount)
	return res, nil
}

// ConsumeMaterial takes stock for a project. The stock decrement and the
// usage record are applied together or not at all.
func (u *InventoryUseCase) ConsumeMaterial(ctx context.Context, projectID, materialID string, quantity float64) (entities.MaterialUsage, error) {
	projectID = strings.TrimSpace(projectID)
	materialID = strings.TrimSpace(materialID)
	if projectID == "" {
		return entities.MaterialUsage{}, ErrInvalidProjectID
	}
	if materialID == "" {
		return entities.MaterialUsage{}, ErrInvalidMaterialID
	}
	if quantity <= 0 {
		return entities.MaterialUsage{}, ErrInvalidQuantity
	}

	var usage entities.MaterialUsage
	err := u.repo.WithLock(func() error {
		m, err := u.repo.GetMaterialByID(ctx, materialID)
		if err != nil {
			return err
		}
		if m.ID == "" {
			return ErrMaterialNotFound
		}
		if quantity > m.CurrentStock {
			return ErrInsufficientStock
		}

		// Snapshot the cost before touching the material.
		usage = entities.MaterialUsage{
			ID:              newID(),
			ProjectID:       projectID,
			MaterialID:      materialID,
			Quantity:        quantity,
			CostAtTimeOfUse: m.CostPerUnit,
			Date:            u.now(),
		}

		updated := m
		updated.CurrentStock = decimalSub(m.CurrentStock, quantity)
		if _, err := u.repo.UpdateMaterial(ctx, updated); err != nil {
			return err
		}
		if _, err := u.repo.CreateMaterialUsage(ctx, usage); err != nil {
			if _, rbErr := u.repo.UpdateMaterial(ctx, m); rbErr != nil {
				log.Printf("[inventory][usecase] consume rollback failed material_id=%s err=%v", m.ID, rbErr)
			}
			return fmt.Errorf("record material usage: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[inventory][usecase] consume failed project_id=%s material_id=%s qty=%v err=%v", projectID, materialID, quantity, err)
		return entities.MaterialUsage{}, err
	}
	log.Printf("[inventory][usecase] consumed project_id=%s material_id=%s qty=%v cost=%v", projectID, materialID, quantity, usage.CostAtTimeOfUse)
	return usage, nil
}

// AdjustStock sets the stock level directly, e.g. after a physical count.
// No transaction is recorded.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, materialID string, newQuantity float64) (entities.Material, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	if newQuantity < 0 {
		return entities.Material{}, ErrInvalidQuantity
	}

	var updated entities.Material
	err := u.repo.WithLock(func() error {
		m, err := u.repo.GetMaterialByID(ctx, materialID)
		if err != nil {
			return err
		}
		if m.ID == "" {
			return ErrMaterialNotFound
		}
		m.CurrentStock = newQuantity
		updated, err = u.repo.UpdateMaterial(ctx, m)
		return err
	})
	if err != nil {
		return entities.Material{}, err
	}
	log.Printf("[inventory][usecase] stock adjusted material_id=%s stock=%v", materialID, newQuantity)
	return updated, nil
}

// ListMaterialUsage returns every usage record, or only those of projectID when set.
func (u *InventoryUseCase) ListMaterialUsage(ctx context.Context, projectID string) ([]entities.MaterialUsage, error) {
	all, err := u.repo.ListMaterialUsage(ctx)
	if err != nil {
		return nil, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return all, nil
	}
	out := make([]entities.MaterialUsage, 0)
	for _, us := range all {
		if us.ProjectID == projectID {
			out = append(out, us)
		}
	}
	return out, nil
}
