package entities

import "time"

// Material is a stock item.
//
// Invariants:
//   - CurrentStock >= 0 at all times.
//   - CostPerUnit is a moving maximum: restocks only ever raise it.
type Material struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	CostPerUnit   float64 `json:"costPerUnit"`
	CurrentStock  float64 `json:"currentStock"`
	MinStockLevel float64 `json:"minStockLevel"`
	Supplier      string  `json:"supplier,omitempty"`
}

// IsLowStock reports whether the material reached its reorder threshold.
func (m Material) IsLowStock() bool {
	return m.CurrentStock <= m.MinStockLevel
}

// MaterialUsage is the append-only record of a stock consumption by a project.
// CostAtTimeOfUse is frozen when the record is created.
type MaterialUsage struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	MaterialID      string    `json:"materialId"`
	Quantity        float64   `json:"quantity"`
	CostAtTimeOfUse float64   `json:"costAtTimeOfUse"`
	Date            time.Time `json:"date"`
}

// Cost is the frozen cost of this consumption.
func (u MaterialUsage) Cost() float64 {
	return u.Quantity * u.CostAtTimeOfUse
}
