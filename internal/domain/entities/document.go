package entities

import "time"

// DocStatus is shared by quotes and invoices.
//
// Documented flow: DRAFT -> SENT -> (ACCEPTED | PAID | PARTIAL | OVERDUE).
// Transitions are not validated; any status may be set at any time.
type DocStatus string

const (
	DocStatusDraft    DocStatus = "DRAFT"
	DocStatusSent     DocStatus = "SENT"
	DocStatusAccepted DocStatus = "ACCEPTED"
	DocStatusPaid     DocStatus = "PAID"
	DocStatusPartial  DocStatus = "PARTIAL"
	DocStatusOverdue  DocStatus = "OVERDUE"
)

func (s DocStatus) Valid() bool {
	switch s {
	case DocStatusDraft, DocStatusSent, DocStatusAccepted, DocStatusPaid, DocStatusPartial, DocStatusOverdue:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentTypeQuote   DocumentType = "QUOTE"
	DocumentTypeInvoice DocumentType = "INVOICE"
)

// Prefix returns the id prefix for the document type ("DEV" or "FAC").
func (t DocumentType) Prefix() (string, bool) {
	switch t {
	case DocumentTypeQuote:
		return "DEV", true
	case DocumentTypeInvoice:
		return "FAC", true
	}
	return "", false
}

// DisplayVATRate is applied on printed documents only. Stored totals are
// always excluding VAT.
const DisplayVATRate = 0.20

// DocumentItem is one line of a quote or invoice. Total is supplied by the
// caller and not checked against Quantity*UnitPrice.
type DocumentItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Quote is a priced proposal (devis).
//
// Storage model:
//   - ClientID is backfilled from the project when left empty.
//   - TotalAmount is caller-supplied and never recomputed from Items.
type Quote struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"projectId,omitempty"`
	ClientID    string         `json:"clientId"`
	Date        time.Time      `json:"date"`
	Items       []DocumentItem `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Status      DocStatus      `json:"status"`
}

// Invoice is a bill (facture). QuoteID is set when it was converted from a quote.
type Invoice struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"projectId,omitempty"`
	ClientID    string         `json:"clientId"`
	QuoteID     string         `json:"quoteId,omitempty"`
	Date        time.Time      `json:"date"`
	DueDate     time.Time      `json:"dueDate"`
	Items       []DocumentItem `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	PaidAmount  float64        `json:"paidAmount"`
	Status      DocStatus      `json:"status"`
}

func (q Quote) VATAmount() float64 { return q.TotalAmount * DisplayVATRate }

func (q Quote) TotalWithVAT() float64 { return q.TotalAmount * (1 + DisplayVATRate) }

func (i Invoice) VATAmount() float64 { return i.TotalAmount * DisplayVATRate }

func (i Invoice) TotalWithVAT() float64 { return i.TotalAmount * (1 + DisplayVATRate) }
