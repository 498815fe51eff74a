package request

import (
	"joinerypro/internal/domain/entities"
	"strings"
)

type MaterialRequest struct {
	Name          string  `json:"name" binding:"required"`
	Unit          string  `json:"unit" binding:"required"`
	CostPerUnit   float64 `json:"costPerUnit" binding:"gte=0"`
	CurrentStock  float64 `json:"currentStock" binding:"gte=0"`
	MinStockLevel float64 `json:"minStockLevel" binding:"gte=0"`
	Supplier      string  `json:"supplier"`
}

func (r MaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Name:          strings.TrimSpace(r.Name),
		Unit:          strings.TrimSpace(r.Unit),
		CostPerUnit:   r.CostPerUnit,
		CurrentStock:  r.CurrentStock,
		MinStockLevel: r.MinStockLevel,
		Supplier:      strings.TrimSpace(r.Supplier),
	}
}

type RestockRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unitCost" binding:"gte=0"`
	Supplier string  `json:"supplier"`
}

type ConsumeRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// AdjustStockRequest uses a pointer so that zero is an accepted count.
type AdjustStockRequest struct {
	Quantity *float64 `json:"quantity" binding:"required,gte=0"`
}
