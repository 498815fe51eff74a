package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"joinerypro/internal/domain/entities"
	mock_interfaces "joinerypro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestAnalyticsUseCase_ProjectFinancials(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)

	deposit := entities.NewIncome("t1", day(2024, 3, 1), 300, entities.IncomeCategoryProjectPayment, "Acompte")
	deposit.ProjectID = "p1"
	balance := entities.NewIncome("t4", day(2024, 3, 5), 200, entities.IncomeCategoryProjectPayment, "Solde")
	balance.ProjectID = "p1"
	expense := entities.NewExpense("t2", day(2024, 3, 2), 50, entities.ExpenseCategoryProjectMaterial, "Quincaillerie")
	expense.ProjectID = "p1"
	other := entities.NewIncome("t3", day(2024, 3, 3), 999, entities.IncomeCategoryOther, "Autre projet")
	other.ProjectID = "p2"
	for _, tx := range []entities.Transaction{deposit, expense, other, balance} {
		if _, err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}
	_, _ = repo.CreateMaterialUsage(ctx, entities.MaterialUsage{ID: "u1", ProjectID: "p1", MaterialID: "m1", Quantity: 2, CostAtTimeOfUse: 25, Date: day(2024, 3, 4)})

	fin, err := NewAnalyticsUseCase(repo).ProjectFinancials(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := entities.ProjectFinancials{Income: 500, Expenses: 50, MaterialCost: 50, TotalCost: 100, Profit: 400}
	if fin != want {
		t.Fatalf("expected %+v, got %+v", want, fin)
	}

	empty, _ := NewAnalyticsUseCase(repo).ProjectFinancials(ctx, "unknown")
	if empty != (entities.ProjectFinancials{}) {
		t.Fatalf("expected zero financials, got %+v", empty)
	}
}

func TestAnalyticsUseCase_ClientProfile(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	mustCreateClient(t, repo, "c1")
	mustCreateProject(t, repo, "p1", "c1")
	mustCreateProject(t, repo, "p2", "c1")

	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-001", ProjectID: "p1", ClientID: "c1", TotalAmount: 1000})
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-002", ClientID: "c1", TotalAmount: 300})

	byProject := entities.NewIncome("t1", day(2024, 3, 1), 400, entities.IncomeCategoryProjectPayment, "")
	byProject.ProjectID = "p1"
	byProject.ClientID = "c1"
	byClient := entities.NewIncome("t2", day(2024, 3, 2), 100, entities.IncomeCategoryServiceFee, "")
	byClient.ClientID = "c1"
	directExpense := entities.NewExpense("t3", day(2024, 3, 3), 70, entities.ExpenseCategoryOverhead, "")
	directExpense.ProjectID = "p1"
	for _, tx := range []entities.Transaction{byProject, byClient, directExpense} {
		_, _ = repo.CreateTransaction(ctx, tx)
	}
	_, _ = repo.CreateMaterialUsage(ctx, entities.MaterialUsage{ID: "u1", ProjectID: "p2", Quantity: 4, CostAtTimeOfUse: 10})

	profile, err := NewAnalyticsUseCase(repo).ClientProfile(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ProjectCount != 2 {
		t.Fatalf("expected 2 projects, got %d", profile.ProjectCount)
	}
	if profile.TotalInvoiced != 1000 {
		t.Fatalf("only project invoices count, got %v", profile.TotalInvoiced)
	}
	if profile.TotalPaid != 500 {
		t.Fatalf("expected paid 500 with no double count, got %v", profile.TotalPaid)
	}
	if profile.TotalMaterialCost != 40 || profile.NetProfit != 460 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAnalyticsUseCase_FinancialStatsWithTrends(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	for _, tx := range []entities.Transaction{
		entities.NewIncome("i1", day(2024, 5, 10), 1000, entities.IncomeCategoryProjectPayment, ""),
		entities.NewIncome("i2", day(2024, 6, 5), 1500, entities.IncomeCategoryProjectPayment, ""),
		entities.NewExpense("e1", day(2024, 6, 6), 500, entities.ExpenseCategoryOverhead, ""),
	} {
		_, _ = repo.CreateTransaction(ctx, tx)
	}

	uc := NewAnalyticsUseCase(repo)
	uc.now = fixedClock(day(2024, 6, 20))
	stats, err := uc.FinancialStatsWithTrends(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Revenue.Value != 2500 || !almostEqual(stats.Revenue.Trend, 50) {
		t.Fatalf("unexpected revenue: %+v", stats.Revenue)
	}
	if stats.Expenses.Value != 500 || stats.Expenses.Trend != 100 {
		t.Fatalf("unexpected expenses: %+v", stats.Expenses)
	}
	if stats.Profit.Value != 2000 || !almostEqual(stats.Profit.Trend, 80) {
		t.Fatalf("unexpected profit: %+v", stats.Profit)
	}
}

func TestTrend(t *testing.T) {
	cases := []struct {
		curr, prev, want float64
	}{
		{0, 0, 0},
		{10, 0, 100},
		{150, 100, 50},
		{50, 100, -50},
	}
	for _, c := range cases {
		if got := trend(c.curr, c.prev); !almostEqual(got, c.want) {
			t.Fatalf("trend(%v, %v) = %v, want %v", c.curr, c.prev, got, c.want)
		}
	}
}

func TestAnalyticsUseCase_MonthlyRevenue(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	for _, tx := range []entities.Transaction{
		entities.NewIncome("i1", day(2024, 2, 10), 800, entities.IncomeCategoryProjectPayment, ""),
		entities.NewExpense("e1", day(2024, 2, 11), 300, entities.ExpenseCategoryOverhead, ""),
		entities.NewIncome("old", day(2023, 2, 10), 9999, entities.IncomeCategoryProjectPayment, ""),
	} {
		_, _ = repo.CreateTransaction(ctx, tx)
	}

	uc := NewAnalyticsUseCase(repo)
	uc.now = fixedClock(day(2024, 7, 1))
	months, err := uc.MonthlyRevenue(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(months) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(months))
	}
	feb := months[1]
	if feb.Name != "Fév" || feb.Month != 2 || feb.Income != 800 || feb.Expense != 300 || feb.Profit != 500 {
		t.Fatalf("unexpected february bucket: %+v", feb)
	}
	if months[0].Income != 0 || months[11].Name != "Déc" {
		t.Fatalf("unexpected buckets: %+v", months)
	}
}

func TestAnalyticsUseCase_OutstandingBalance(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "a", TotalAmount: 100, Status: entities.DocStatusPaid})
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "b", TotalAmount: 250, PaidAmount: 100, Status: entities.DocStatusPartial})
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "c", TotalAmount: 50, Status: entities.DocStatusSent})

	total, err := NewAnalyticsUseCase(repo).OutstandingBalance(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 300 {
		t.Fatalf("expected 300, got %v", total)
	}
}

func TestAnalyticsUseCase_GlobalHistory(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	mustCreateClient(t, repo, "c1")
	mustCreateProject(t, repo, "p1", "c1") // 2024-01-10
	_, _ = repo.CreateMaterial(ctx, entities.Material{ID: "m1", Name: "Chêne", Unit: "m2"})
	_, _ = repo.CreateTransaction(ctx, entities.NewExpense("t1", day(2024, 3, 1), 80, entities.ExpenseCategoryOverhead, "Loyer"))
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-001", ProjectID: "p1", Date: day(2024, 2, 1), TotalAmount: 900, Status: entities.DocStatusSent})
	_, _ = repo.CreateMaterialUsage(ctx, entities.MaterialUsage{ID: "u1", ProjectID: "p1", MaterialID: "m1", Quantity: 2, CostAtTimeOfUse: 30, Date: day(2024, 4, 1)})

	uc := NewAnalyticsUseCase(repo)
	items, err := uc.GlobalHistory(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 events, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("history not sorted newest first: %+v", items)
		}
	}
	if items[0].Type != entities.HistoryTypeUsage || *items[0].Amount != -60 {
		t.Fatalf("unexpected usage event: %+v", items[0])
	}
	if items[0].Description != "Utilisation 2 m2 - Chêne" {
		t.Fatalf("unexpected usage description: %q", items[0].Description)
	}
	if items[1].Type != entities.HistoryTypeTransaction || *items[1].Amount != -80 {
		t.Fatalf("unexpected transaction event: %+v", items[1])
	}
	if items[2].Description != "Facture #FAC-2024-001" {
		t.Fatalf("unexpected invoice event: %+v", items[2])
	}
	if items[3].Type != entities.HistoryTypeProject || items[3].Amount != nil {
		t.Fatalf("unexpected project event: %+v", items[3])
	}

	filtered, err := uc.GlobalHistory(ctx, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected invoice and transaction only, got %+v", filtered)
	}
}

func TestAnalyticsUseCase_GlobalHistoryDayBounds(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	dates := []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		tx := entities.NewExpense(fmt.Sprintf("t%d", i), d, 10, entities.ExpenseCategoryOverhead, "Frais")
		if _, err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}
	uc := NewAnalyticsUseCase(repo)
	march1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	upTo, err := uc.GlobalHistory(ctx, time.Time{}, march1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upTo) != 2 {
		t.Fatalf("expected both events of March 1st only, got %+v", upTo)
	}

	from, _ := uc.GlobalHistory(ctx, march2, time.Time{})
	if len(from) != 1 || !from[0].Date.Equal(march2) {
		t.Fatalf("expected the midnight event only, got %+v", from)
	}
}

func TestAnalyticsUseCase_ClientHistory(t *testing.T) {
	ctx := context.Background()
	repo := newTestLedger(t)
	mustCreateClient(t, repo, "c1")
	mustCreateClient(t, repo, "c2")
	mustCreateProject(t, repo, "p1", "c1")
	mustCreateProject(t, repo, "p2", "c2")
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-001", ProjectID: "p1", Date: day(2024, 2, 1)})
	_, _ = repo.CreateInvoice(ctx, entities.Invoice{ID: "FAC-2024-002", ProjectID: "p2", Date: day(2024, 2, 2)})
	_, _ = repo.CreateMaterialUsage(ctx, entities.MaterialUsage{ID: "u1", ProjectID: "p1", Quantity: 1, CostAtTimeOfUse: 5, Date: day(2024, 2, 3)})

	items, err := NewAnalyticsUseCase(repo).ClientHistory(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected usage, invoice and project for c1, got %+v", items)
	}
	if items[0].Meta["projectName"] != "Projet p1" {
		t.Fatalf("expected project name in usage meta, got %+v", items[0])
	}

	if _, err := NewAnalyticsUseCase(repo).ClientHistory(ctx, " "); !errors.Is(err, ErrInvalidClientID) {
		t.Fatalf("expected ErrInvalidClientID, got %v", err)
	}
}

func TestAnalyticsUseCase_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILedgerRepository(ctrl)

	repo.EXPECT().ListInvoices(gomock.Any()).Return(nil, errors.New("db"))

	_, err := NewAnalyticsUseCase(repo).OutstandingBalance(context.Background())
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
