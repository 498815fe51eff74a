package entities

import (
	"errors"
	"time"
)

var ErrCategoryMismatch = errors.New("category does not belong to transaction type")

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// IncomeCategory is only legal on INCOME transactions.
type IncomeCategory string

const (
	IncomeCategoryProjectPayment IncomeCategory = "PROJECT_PAYMENT"
	IncomeCategoryMaterialSale   IncomeCategory = "MATERIAL_SALE"
	IncomeCategoryServiceFee     IncomeCategory = "SERVICE_FEE"
	IncomeCategoryOther          IncomeCategory = "OTHER"
)

// ExpenseCategory is only legal on EXPENSE transactions.
type ExpenseCategory string

const (
	ExpenseCategoryProjectMaterial  ExpenseCategory = "PROJECT_MATERIAL"
	ExpenseCategoryOverhead         ExpenseCategory = "OVERHEAD"
	ExpenseCategoryToolPurchase     ExpenseCategory = "TOOL_PURCHASE"
	ExpenseCategoryRestockInventory ExpenseCategory = "RESTOCK_INVENTORY"
)

func (c IncomeCategory) Valid() bool {
	switch c {
	case IncomeCategoryProjectPayment, IncomeCategoryMaterialSale, IncomeCategoryServiceFee, IncomeCategoryOther:
		return true
	}
	return false
}

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryProjectMaterial, ExpenseCategoryOverhead, ExpenseCategoryToolPurchase, ExpenseCategoryRestockInventory:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCheck    PaymentMethod = "CHECK"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

// Transaction is a cash movement. Amount is positive; the direction is
// carried by Type. Category holds an IncomeCategory or an ExpenseCategory
// depending on Type; use NewIncome/NewExpense to build one that is
// consistent, and Validate to check one that came from outside.
//
// ProjectID, InvoiceID and ClientID are reporting links only.
type Transaction struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        float64         `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	ProjectID     string          `json:"projectId,omitempty"`
	InvoiceID     string          `json:"invoiceId,omitempty"`
	ClientID      string          `json:"clientId,omitempty"`
}

func NewIncome(id string, date time.Time, amount float64, category IncomeCategory, description string) Transaction {
	return Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Type:        TransactionTypeIncome,
		Category:    string(category),
		Description: description,
	}
}

func NewExpense(id string, date time.Time, amount float64, category ExpenseCategory, description string) Transaction {
	return Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Type:        TransactionTypeExpense,
		Category:    string(category),
		Description: description,
	}
}

// IncomeCategory returns the category when t is an income.
func (t Transaction) IncomeCategory() (IncomeCategory, bool) {
	if t.Type != TransactionTypeIncome {
		return "", false
	}
	c := IncomeCategory(t.Category)
	return c, c.Valid()
}

// ExpenseCategory returns the category when t is an expense.
func (t Transaction) ExpenseCategory() (ExpenseCategory, bool) {
	if t.Type != TransactionTypeExpense {
		return "", false
	}
	c := ExpenseCategory(t.Category)
	return c, c.Valid()
}

// Validate checks that the category belongs to the transaction type.
func (t Transaction) Validate() error {
	switch t.Type {
	case TransactionTypeIncome:
		if _, ok := t.IncomeCategory(); ok {
			return nil
		}
	case TransactionTypeExpense:
		if _, ok := t.ExpenseCategory(); ok {
			return nil
		}
	}
	return ErrCategoryMismatch
}

// Signed returns the amount with the sign implied by Type.
func (t Transaction) Signed() float64 {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return -t.Amount
}
