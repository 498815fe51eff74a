package entities

import "time"

// ProjectFinancials is the job costing of one project.
//
// Expenses are direct EXPENSE transactions linked to the project; material
// cost comes only from MaterialUsage so restock purchases are not counted twice.
type ProjectFinancials struct {
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	MaterialCost float64 `json:"materialCost"`
	TotalCost    float64 `json:"totalCost"`
	Profit       float64 `json:"profit"`
}

// ClientFinancialProfile summarises a client.
//
// NetProfit is TotalPaid - TotalMaterialCost; direct expenses are not part of
// it, unlike ProjectFinancials.Profit.
type ClientFinancialProfile struct {
	TotalInvoiced     float64 `json:"totalInvoiced"`
	TotalPaid         float64 `json:"totalPaid"`
	TotalMaterialCost float64 `json:"totalMaterialCost"`
	NetProfit         float64 `json:"netProfit"`
	ProjectCount      int     `json:"projectCount"`
}

type TrendValue struct {
	Value float64 `json:"value"`
	Trend float64 `json:"trend"`
}

// FinancialStats holds all-time totals with month over month trends.
// Profit.Trend is the global profit margin percentage, not a trend.
type FinancialStats struct {
	Revenue  TrendValue `json:"revenue"`
	Expenses TrendValue `json:"expenses"`
	Profit   TrendValue `json:"profit"`
}

type MonthlyRevenue struct {
	Name    string  `json:"name"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

type HistoryType string

const (
	HistoryTypeTransaction HistoryType = "TRANSACTION"
	HistoryTypeInvoice     HistoryType = "INVOICE"
	HistoryTypeUsage       HistoryType = "USAGE"
	HistoryTypeProject     HistoryType = "PROJECT"
)

// HistoryItem is one event of the merged timeline. Amount is nil for
// project creation events.
type HistoryItem struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Type        HistoryType       `json:"type"`
	Description string            `json:"description"`
	Amount      *float64          `json:"amount,omitempty"`
	ReferenceID string            `json:"referenceId,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}

type ProjectWithFinancials struct {
	Project
	Financials ProjectFinancials `json:"financials"`
}

type CashFlow struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
}

// LedgerSnapshot is the read-only view handed to the insight generator.
type LedgerSnapshot struct {
	Projects  []ProjectWithFinancials `json:"projects"`
	Inventory []Material              `json:"inventory"`
	CashFlow  CashFlow                `json:"cashFlow"`
}

type InsightCategory string

const (
	InsightWarning     InsightCategory = "WARNING"
	InsightOpportunity InsightCategory = "OPPORTUNITY"
	InsightInfo        InsightCategory = "INFO"
)

type Insight struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    InsightCategory `json:"type"`
	Metric      string          `json:"metric,omitempty"`
}
