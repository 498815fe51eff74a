package usecase

//go:generate mockgen -source=analytics_usecase.go -destination=../adapter/http/handlers/mocks/mock_analytics_usecase.go -package=mocks

import (
	"context"
	"fmt"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"math"
	"sort"
	"strings"
	"time"
)

var monthNames = [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"}

// IAnalyticsUseCase derives read-only figures. Every call rescans the
// current collections; nothing is cached.
type IAnalyticsUseCase interface {
	ProjectFinancials(ctx context.Context, projectID string) (entities.ProjectFinancials, error)
	ClientProfile(ctx context.Context, clientID string) (entities.ClientFinancialProfile, error)
	FinancialStatsWithTrends(ctx context.Context) (entities.FinancialStats, error)
	MonthlyRevenue(ctx context.Context) ([]entities.MonthlyRevenue, error)
	GlobalHistory(ctx context.Context, from, to time.Time) ([]entities.HistoryItem, error)
	ClientHistory(ctx context.Context, clientID string) ([]entities.HistoryItem, error)
	OutstandingBalance(ctx context.Context) (float64, error)
	CombinedSnapshot(ctx context.Context) (entities.LedgerSnapshot, error)
}

type AnalyticsUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.ILedgerRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, now: systemClock}
}

// ProjectFinancials: profit = income - (direct expenses + material cost).
func (u *AnalyticsUseCase) ProjectFinancials(ctx context.Context, projectID string) (entities.ProjectFinancials, error) {
	txs, err := u.repo.ListTransactions(ctx)
	if err != nil {
		return entities.ProjectFinancials{}, err
	}
	usage, err := u.repo.ListMaterialUsage(ctx)
	if err != nil {
		return entities.ProjectFinancials{}, err
	}
	return projectFinancials(projectID, txs, usage), nil
}

func projectFinancials(projectID string, txs []entities.Transaction, usage []entities.MaterialUsage) entities.ProjectFinancials {
	var income, expenses, material amountSum
	for _, t := range txs {
		if t.ProjectID != projectID {
			continue
		}
		switch t.Type {
		case entities.TransactionTypeIncome:
			income.add(t.Amount)
		case entities.TransactionTypeExpense:
			expenses.add(t.Amount)
		}
	}
	for _, us := range usage {
		if us.ProjectID == projectID {
			material.add(us.Cost())
		}
	}

	var total amountSum
	total.total = expenses.total.Add(material.total)
	return entities.ProjectFinancials{
		Income:       income.value(),
		Expenses:     expenses.value(),
		MaterialCost: material.value(),
		TotalCost:    total.value(),
		Profit:       income.total.Sub(total.total).InexactFloat64(),
	}
}

// ClientProfile aggregates a client's projects.
//
//   - TotalInvoiced counts invoices whose project belongs to the client.
//   - TotalPaid counts INCOME linked to one of those projects or to the client
//     directly; a transaction matching both is counted once.
//   - NetProfit = TotalPaid - TotalMaterialCost. Direct expenses are left out.
func (u *AnalyticsUseCase) ClientProfile(ctx context.Context, clientID string) (entities.ClientFinancialProfile, error) {
	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return entities.ClientFinancialProfile{}, err
	}
	invoices, err := u.repo.ListInvoices(ctx)
	if err != nil {
		return entities.ClientFinancialProfile{}, err
	}
	txs, err := u.repo.ListTransactions(ctx)
	if err != nil {
		return entities.ClientFinancialProfile{}, err
	}
	usage, err := u.repo.ListMaterialUsage(ctx)
	if err != nil {
		return entities.ClientFinancialProfile{}, err
	}

	projectIDs := clientProjectIDs(clientID, projects)

	var invoiced, paid, material amountSum
	for _, inv := range invoices {
		if _, ok := projectIDs[inv.ProjectID]; ok && inv.ProjectID != "" {
			invoiced.add(inv.TotalAmount)
		}
	}
	for _, t := range txs {
		if t.Type == entities.TransactionTypeIncome && belongsToClient(t, clientID, projectIDs) {
			paid.add(t.Amount)
		}
	}
	for _, us := range usage {
		if _, ok := projectIDs[us.ProjectID]; ok {
			material.add(us.Cost())
		}
	}

	return entities.ClientFinancialProfile{
		TotalInvoiced:     invoiced.value(),
		TotalPaid:         paid.value(),
		TotalMaterialCost: material.value(),
		NetProfit:         paid.total.Sub(material.total).InexactFloat64(),
		ProjectCount:      len(projectIDs),
	}, nil
}

func clientProjectIDs(clientID string, projects []entities.Project) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, p := range projects {
		if p.ClientID == clientID {
			ids[p.ID] = struct{}{}
		}
	}
	return ids
}

func belongsToClient(t entities.Transaction, clientID string, projectIDs map[string]struct{}) bool {
	if t.ProjectID != "" {
		if _, ok := projectIDs[t.ProjectID]; ok {
			return true
		}
	}
	return t.ClientID != "" && t.ClientID == clientID
}

// FinancialStatsWithTrends returns all-time totals. Revenue and Expenses
// trends compare the current calendar month with the previous one;
// Profit.Trend carries the global margin percentage instead.
func (u *AnalyticsUseCase) FinancialStatsWithTrends(ctx context.Context) (entities.FinancialStats, error) {
	txs, err := u.repo.ListTransactions(ctx)
	if err != nil {
		return entities.FinancialStats{}, err
	}

	now := u.now()
	loc := now.Location()
	curY, curM := now.Year(), now.Month()
	prevY, prevM := curY, curM-1
	if curM == time.January {
		prevY, prevM = curY-1, time.December
	}

	var incomeCur, incomePrev, expenseCur, expensePrev, incomeAll, expenseAll amountSum
	for _, t := range txs {
		d := t.Date.In(loc)
		isCur := d.Year() == curY && d.Month() == curM
		isPrev := d.Year() == prevY && d.Month() == prevM
		switch t.Type {
		case entities.TransactionTypeIncome:
			incomeAll.add(t.Amount)
			if isCur {
				incomeCur.add(t.Amount)
			}
			if isPrev {
				incomePrev.add(t.Amount)
			}
		case entities.TransactionTypeExpense:
			expenseAll.add(t.Amount)
			if isCur {
				expenseCur.add(t.Amount)
			}
			if isPrev {
				expensePrev.add(t.Amount)
			}
		}
	}

	totalIncome := incomeAll.value()
	profit := incomeAll.total.Sub(expenseAll.total).InexactFloat64()
	margin := 0.0
	if totalIncome > 0 {
		margin = profit / totalIncome * 100
	}

	return entities.FinancialStats{
		Revenue:  entities.TrendValue{Value: totalIncome, Trend: trend(incomeCur.value(), incomePrev.value())},
		Expenses: entities.TrendValue{Value: expenseAll.value(), Trend: trend(expenseCur.value(), expensePrev.value())},
		Profit:   entities.TrendValue{Value: profit, Trend: margin},
	}, nil
}

// trend is the percentage change from prev to curr. A zero prev yields 100
// when curr is positive, 0 otherwise.
func trend(curr, prev float64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return (curr - prev) / math.Abs(prev) * 100
}

// MonthlyRevenue buckets the current year's transactions by month.
func (u *AnalyticsUseCase) MonthlyRevenue(ctx context.Context) ([]entities.MonthlyRevenue, error) {
	txs, err := u.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	loc := now.Location()
	year := now.Year()

	var income, expense [12]amountSum
	for _, t := range txs {
		d := t.Date.In(loc)
		if d.Year() != year {
			continue
		}
		idx := int(d.Month()) - 1
		switch t.Type {
		case entities.TransactionTypeIncome:
			income[idx].add(t.Amount)
		case entities.TransactionTypeExpense:
			expense[idx].add(t.Amount)
		}
	}

	out := make([]entities.MonthlyRevenue, 12)
	for i := range out {
		out[i] = entities.MonthlyRevenue{
			Name:    monthNames[i],
			Month:   i + 1,
			Income:  income[i].value(),
			Expense: expense[i].value(),
			Profit:  income[i].total.Sub(expense[i].total).InexactFloat64(),
		}
	}
	return out, nil
}

// OutstandingBalance sums TotalAmount of every invoice not PAID. Partial
// payments recorded in PaidAmount are ignored, so this overstates
// receivables for PARTIAL invoices.
func (u *AnalyticsUseCase) OutstandingBalance(ctx context.Context) (float64, error) {
	invoices, err := u.repo.ListInvoices(ctx)
	if err != nil {
		return 0, err
	}
	var s amountSum
	for _, inv := range invoices {
		if inv.Status != entities.DocStatusPaid {
			s.add(inv.TotalAmount)
		}
	}
	return s.value(), nil
}

// CombinedSnapshot is the data handed to the insight generator.
func (u *AnalyticsUseCase) CombinedSnapshot(ctx context.Context) (entities.LedgerSnapshot, error) {
	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return entities.LedgerSnapshot{}, err
	}
	materials, err := u.repo.ListMaterials(ctx)
	if err != nil {
		return entities.LedgerSnapshot{}, err
	}
	txs, err := u.repo.ListTransactions(ctx)
	if err != nil {
		return entities.LedgerSnapshot{}, err
	}
	usage, err := u.repo.ListMaterialUsage(ctx)
	if err != nil {
		return entities.LedgerSnapshot{}, err
	}

	withFin := make([]entities.ProjectWithFinancials, 0, len(projects))
	for _, p := range projects {
		withFin = append(withFin, entities.ProjectWithFinancials{
			Project:    p,
			Financials: projectFinancials(p.ID, txs, usage),
		})
	}
	var income, expense amountSum
	for _, t := range txs {
		switch t.Type {
		case entities.TransactionTypeIncome:
			income.add(t.Amount)
		case entities.TransactionTypeExpense:
			expense.add(t.Amount)
		}
	}
	return entities.LedgerSnapshot{
		Projects:  withFin,
		Inventory: materials,
		CashFlow:  entities.CashFlow{TotalIncome: income.value(), TotalExpense: expense.value()},
	}, nil
}

// GlobalHistory merges transactions, invoices, material usage and project
// creations, newest first. Zero from/to disable the bound; to covers the
// whole day it falls on.
func (u *AnalyticsUseCase) GlobalHistory(ctx context.Context, from, to time.Time) ([]entities.HistoryItem, error) {
	data, err := u.loadHistoryData(ctx)
	if err != nil {
		return nil, err
	}

	materials := indexMaterials(data.materials)
	items := make([]entities.HistoryItem, 0, len(data.txs)+len(data.invoices)+len(data.usage)+len(data.projects))
	for _, t := range data.txs {
		items = append(items, transactionEvent(t))
	}
	for _, inv := range data.invoices {
		items = append(items, invoiceEvent(inv))
	}
	for _, us := range data.usage {
		m, ok := materials[us.MaterialID]
		unit := "unités"
		if ok && m.Unit != "" {
			unit = m.Unit
		}
		items = append(items, entities.HistoryItem{
			ID:          us.ID,
			Date:        us.Date,
			Type:        entities.HistoryTypeUsage,
			Description: fmt.Sprintf("Utilisation %s %s - %s", formatQty(us.Quantity), unit, m.Name),
			Amount:      amountPtr(-us.Cost()),
			ReferenceID: us.ProjectID,
		})
	}
	for _, p := range data.projects {
		items = append(items, projectEvent(p))
	}

	if !from.IsZero() || !to.IsZero() {
		items = filterByDate(items, from, to)
	}
	sortHistory(items)
	return items, nil
}

// ClientHistory is GlobalHistory restricted to one client: transactions linked
// to the client or its projects, invoices of the client or its projects,
// usage on its projects and its project creations.
func (u *AnalyticsUseCase) ClientHistory(ctx context.Context, clientID string) ([]entities.HistoryItem, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	data, err := u.loadHistoryData(ctx)
	if err != nil {
		return nil, err
	}

	projectIDs := clientProjectIDs(clientID, data.projects)
	projectNames := make(map[string]string, len(projectIDs))
	for _, p := range data.projects {
		projectNames[p.ID] = p.Name
	}
	materials := indexMaterials(data.materials)

	items := make([]entities.HistoryItem, 0)
	for _, t := range data.txs {
		if belongsToClient(t, clientID, projectIDs) {
			items = append(items, transactionEvent(t))
		}
	}
	for _, inv := range data.invoices {
		_, ownProject := projectIDs[inv.ProjectID]
		if inv.ClientID == clientID || (inv.ProjectID != "" && ownProject) {
			items = append(items, invoiceEvent(inv))
		}
	}
	for _, us := range data.usage {
		if _, ok := projectIDs[us.ProjectID]; !ok {
			continue
		}
		m := materials[us.MaterialID]
		items = append(items, entities.HistoryItem{
			ID:          us.ID,
			Date:        us.Date,
			Type:        entities.HistoryTypeUsage,
			Description: fmt.Sprintf("Utilisation: %s (%s %s)", m.Name, formatQty(us.Quantity), m.Unit),
			Amount:      amountPtr(-us.Cost()),
			ReferenceID: us.ProjectID,
			Meta:        map[string]string{"projectName": projectNames[us.ProjectID]},
		})
	}
	for _, p := range data.projects {
		if p.ClientID == clientID {
			items = append(items, projectEvent(p))
		}
	}

	sortHistory(items)
	return items, nil
}

type historyData struct {
	txs       []entities.Transaction
	invoices  []entities.Invoice
	usage     []entities.MaterialUsage
	projects  []entities.Project
	materials []entities.Material
}

func (u *AnalyticsUseCase) loadHistoryData(ctx context.Context) (historyData, error) {
	var d historyData
	var err error
	if d.txs, err = u.repo.ListTransactions(ctx); err != nil {
		return d, err
	}
	if d.invoices, err = u.repo.ListInvoices(ctx); err != nil {
		return d, err
	}
	if d.usage, err = u.repo.ListMaterialUsage(ctx); err != nil {
		return d, err
	}
	if d.projects, err = u.repo.ListProjects(ctx); err != nil {
		return d, err
	}
	if d.materials, err = u.repo.ListMaterials(ctx); err != nil {
		return d, err
	}
	return d, nil
}

func indexMaterials(materials []entities.Material) map[string]entities.Material {
	idx := make(map[string]entities.Material, len(materials))
	for _, m := range materials {
		idx[m.ID] = m
	}
	return idx
}

func transactionEvent(t entities.Transaction) entities.HistoryItem {
	return entities.HistoryItem{
		ID:          t.ID,
		Date:        t.Date,
		Type:        entities.HistoryTypeTransaction,
		Description: t.Description,
		Amount:      amountPtr(t.Signed()),
		Meta:        map[string]string{"category": t.Category},
	}
}

func invoiceEvent(inv entities.Invoice) entities.HistoryItem {
	return entities.HistoryItem{
		ID:          inv.ID,
		Date:        inv.Date,
		Type:        entities.HistoryTypeInvoice,
		Description: "Facture #" + inv.ID,
		Amount:      amountPtr(inv.TotalAmount),
		ReferenceID: inv.ProjectID,
		Meta:        map[string]string{"status": string(inv.Status)},
	}
}

func projectEvent(p entities.Project) entities.HistoryItem {
	return entities.HistoryItem{
		ID:          p.ID,
		Date:        p.StartDate,
		Type:        entities.HistoryTypeProject,
		Description: "Nouveau Projet: " + p.Name,
		ReferenceID: p.ClientID,
	}
}

func amountPtr(v float64) *float64 { return &v }

func filterByDate(items []entities.HistoryItem, from, to time.Time) []entities.HistoryItem {
	var end time.Time
	if !to.IsZero() {
		end = to.Add(24 * time.Hour)
	}
	out := items[:0]
	for _, it := range items {
		if !from.IsZero() && it.Date.Before(from) {
			continue
		}
		if !end.IsZero() && !it.Date.Before(end) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func sortHistory(items []entities.HistoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
