package request

import (
	"joinerypro/internal/domain/entities"
	"strings"
	"time"
)

type TransactionRequest struct {
	Date          *time.Time `json:"date"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	Type          string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category      string     `json:"category" binding:"required"`
	Description   string     `json:"description"`
	PaymentMethod string     `json:"paymentMethod" binding:"omitempty,oneof=CASH CHECK TRANSFER OTHER"`
	ProjectID     string     `json:"projectId"`
	InvoiceID     string     `json:"invoiceId"`
	ClientID      string     `json:"clientId"`
}

func (r TransactionRequest) ToEntity(id string) entities.Transaction {
	t := entities.Transaction{
		ID:            id,
		Amount:        r.Amount,
		Type:          entities.TransactionType(r.Type),
		Category:      strings.ToUpper(strings.TrimSpace(r.Category)),
		Description:   r.Description,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		ProjectID:     strings.TrimSpace(r.ProjectID),
		InvoiceID:     strings.TrimSpace(r.InvoiceID),
		ClientID:      strings.TrimSpace(r.ClientID),
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	return t
}
