package request

import (
	"joinerypro/internal/domain/entities"
	"strings"
	"time"
)

type DocumentItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"gte=0"`
	Total       float64 `json:"total" binding:"gte=0"`
}

type QuoteRequest struct {
	ID          string                `json:"id"`
	ProjectID   string                `json:"projectId"`
	ClientID    string                `json:"clientId"`
	Date        *time.Time            `json:"date"`
	Items       []DocumentItemRequest `json:"items" binding:"dive"`
	TotalAmount float64               `json:"totalAmount" binding:"gte=0"`
	Status      string                `json:"status"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	q := entities.Quote{
		ID:          strings.TrimSpace(r.ID),
		ProjectID:   strings.TrimSpace(r.ProjectID),
		ClientID:    strings.TrimSpace(r.ClientID),
		Items:       toItems(r.Items),
		TotalAmount: r.TotalAmount,
		Status:      entities.DocStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
	if r.Date != nil {
		q.Date = *r.Date
	}
	return q
}

type InvoiceRequest struct {
	ID          string                `json:"id"`
	ProjectID   string                `json:"projectId"`
	ClientID    string                `json:"clientId"`
	QuoteID     string                `json:"quoteId"`
	Date        *time.Time            `json:"date"`
	DueDate     *time.Time            `json:"dueDate"`
	Items       []DocumentItemRequest `json:"items" binding:"dive"`
	TotalAmount float64               `json:"totalAmount" binding:"gte=0"`
	PaidAmount  float64               `json:"paidAmount" binding:"gte=0"`
	Status      string                `json:"status"`
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	inv := entities.Invoice{
		ID:          strings.TrimSpace(r.ID),
		ProjectID:   strings.TrimSpace(r.ProjectID),
		ClientID:    strings.TrimSpace(r.ClientID),
		QuoteID:     strings.TrimSpace(r.QuoteID),
		Items:       toItems(r.Items),
		TotalAmount: r.TotalAmount,
		PaidAmount:  r.PaidAmount,
		Status:      entities.DocStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
	if r.Date != nil {
		inv.Date = *r.Date
	}
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	return inv
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toItems(in []DocumentItemRequest) []entities.DocumentItem {
	items := make([]entities.DocumentItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.DocumentItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return items
}
