package usecase

//go:generate mockgen -source=document_usecase.go -destination=../adapter/http/handlers/mocks/mock_document_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidDocumentID   = errors.New("invalid document id")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrInvalidDocStatus    = errors.New("invalid document status")
	ErrDocumentIDTaken     = errors.New("document id already exists")
)

// DefaultPaymentTerm is the due date offset of invoices created without one.
const DefaultPaymentTerm = 30 * 24 * time.Hour

// IDocumentUseCase covers quotes and invoices.
//
// Ids follow {PREFIX}-{YEAR}-{SEQ}: DEV for quotes, FAC for invoices, SEQ
// being the count of existing ids with the same prefix and year plus one,
// padded to 3 digits. Generation and insert run under the repository lock.
//
// Statuses are free-form: no transition is validated.

type IDocumentUseCase interface {
	GenerateDocumentID(ctx context.Context, docType entities.DocumentType) (string, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	CreateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	UpdateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status entities.DocStatus) (entities.Invoice, error)
	ConvertQuoteToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error)
}

type DocumentUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.ILedgerRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, now: systemClock}
}

func (u *DocumentUseCase) GenerateDocumentID(ctx context.Context, docType entities.DocumentType) (string, error) {
	var id string
	err := u.repo.WithLock(func() error {
		var err error
		id, err = u.nextID(ctx, docType)
		return err
	})
	return id, err
}

// nextID must run under the repository lock.
func (u *DocumentUseCase) nextID(ctx context.Context, docType entities.DocumentType) (string, error) {
	prefix, ok := docType.Prefix()
	if !ok {
		return "", ErrInvalidDocumentType
	}
	ids, err := u.documentIDs(ctx, docType)
	if err != nil {
		return "", err
	}
	stem := fmt.Sprintf("%s-%d", prefix, u.now().Year())
	count := 0
	for _, id := range ids {
		if strings.HasPrefix(id, stem) {
			count++
		}
	}
	return fmt.Sprintf("%s-%03d", stem, count+1), nil
}

func (u *DocumentUseCase) documentIDs(ctx context.Context, docType entities.DocumentType) ([]string, error) {
	var ids []string
	switch docType {
	case entities.DocumentTypeQuote:
		quotes, err := u.repo.ListQuotes(ctx)
		if err != nil {
			return nil, err
		}
		for _, q := range quotes {
			ids = append(ids, q.ID)
		}
	case entities.DocumentTypeInvoice:
		invoices, err := u.repo.ListInvoices(ctx)
		if err != nil {
			return nil, err
		}
		for _, i := range invoices {
			ids = append(ids, i.ID)
		}
	}
	return ids, nil
}

// backfillClient returns the project's client when clientID is empty.
// It returns clientID unchanged when the project cannot be resolved.
func (u *DocumentUseCase) backfillClient(ctx context.Context, clientID, projectID string) (string, error) {
	if clientID != "" || projectID == "" {
		return clientID, nil
	}
	p, err := u.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	return p.ClientID, nil
}

func (u *DocumentUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.ListQuotes(ctx)
}

func (u *DocumentUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidDocumentID
	}
	q, err := u.repo.GetQuoteByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// CreateQuote stores q as given. TotalAmount is trusted, not recomputed.
func (u *DocumentUseCase) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if q.Status == "" {
		q.Status = entities.DocStatusDraft
	}
	if !q.Status.Valid() {
		return entities.Quote{}, ErrInvalidDocStatus
	}
	if q.Date.IsZero() {
		q.Date = u.now()
	}
	q.ID = strings.TrimSpace(q.ID)

	var created entities.Quote
	err := u.repo.WithLock(func() error {
		var err error
		if q.ID == "" {
			if q.ID, err = u.nextID(ctx, entities.DocumentTypeQuote); err != nil {
				return err
			}
		} else if existing, err := u.repo.GetQuoteByID(ctx, q.ID); err != nil {
			return err
		} else if existing.ID != "" {
			return ErrDocumentIDTaken
		}
		if q.ClientID, err = u.backfillClient(ctx, q.ClientID, q.ProjectID); err != nil {
			return err
		}
		created, err = u.repo.CreateQuote(ctx, q)
		return err
	})
	if err != nil {
		log.Printf("[document][usecase] create quote failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[document][usecase] quote created quote_id=%s client_id=%s total=%.2f", created.ID, created.ClientID, created.TotalAmount)
	return created, nil
}

func (u *DocumentUseCase) UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return entities.Quote{}, ErrInvalidDocumentID
	}
	if !q.Status.Valid() {
		return entities.Quote{}, ErrInvalidDocStatus
	}
	updated, err := u.repo.UpdateQuote(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *DocumentUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.ListInvoices(ctx)
}

func (u *DocumentUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidDocumentID
	}
	i, err := u.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if i.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return i, nil
}

// CreateInvoice stores inv as given. TotalAmount is trusted, not recomputed.
func (u *DocumentUseCase) CreateInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if inv.Status == "" {
		inv.Status = entities.DocStatusDraft
	}
	if !inv.Status.Valid() {
		return entities.Invoice{}, ErrInvalidDocStatus
	}
	if inv.Date.IsZero() {
		inv.Date = u.now()
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.Date.Add(DefaultPaymentTerm)
	}
	inv.ID = strings.TrimSpace(inv.ID)

	var created entities.Invoice
	err := u.repo.WithLock(func() error {
		var err error
		created, err = u.createInvoiceLocked(ctx, inv)
		return err
	})
	if err != nil {
		log.Printf("[document][usecase] create invoice failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[document][usecase] invoice created invoice_id=%s client_id=%s total=%.2f", created.ID, created.ClientID, created.TotalAmount)
	return created, nil
}

func (u *DocumentUseCase) createInvoiceLocked(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	var err error
	if inv.ID == "" {
		if inv.ID, err = u.nextID(ctx, entities.DocumentTypeInvoice); err != nil {
			return entities.Invoice{}, err
		}
	} else if existing, err := u.repo.GetInvoiceByID(ctx, inv.ID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrDocumentIDTaken
	}
	if inv.ClientID, err = u.backfillClient(ctx, inv.ClientID, inv.ProjectID); err != nil {
		return entities.Invoice{}, err
	}
	return u.repo.CreateInvoice(ctx, inv)
}

func (u *DocumentUseCase) UpdateInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.ID = strings.TrimSpace(inv.ID)
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvalidDocumentID
	}
	if !inv.Status.Valid() {
		return entities.Invoice{}, ErrInvalidDocStatus
	}
	updated, err := u.repo.UpdateInvoice(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *DocumentUseCase) UpdateInvoiceStatus(ctx context.Context, id string, status entities.DocStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidDocumentID
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidDocStatus
	}

	var updated entities.Invoice
	err := u.repo.WithLock(func() error {
		inv, err := u.repo.GetInvoiceByID(ctx, id)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		inv.Status = status
		updated, err = u.repo.UpdateInvoice(ctx, inv)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[document][usecase] invoice status invoice_id=%s status=%s", id, status)
	return updated, nil
}

// ConvertQuoteToInvoice creates a DRAFT invoice from a quote: same items,
// total, client and project, a fresh FAC id, due in 30 days, nothing paid.
// The quote itself is left untouched.
func (u *DocumentUseCase) ConvertQuoteToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidDocumentID
	}

	var created entities.Invoice
	err := u.repo.WithLock(func() error {
		q, err := u.repo.GetQuoteByID(ctx, quoteID)
		if err != nil {
			return err
		}
		if q.ID == "" {
			return ErrQuoteNotFound
		}
		now := u.now()
		created, err = u.createInvoiceLocked(ctx, entities.Invoice{
			ProjectID:   q.ProjectID,
			ClientID:    q.ClientID,
			QuoteID:     q.ID,
			Date:        now,
			DueDate:     now.Add(DefaultPaymentTerm),
			Items:       append([]entities.DocumentItem(nil), q.Items...),
			TotalAmount: q.TotalAmount,
			PaidAmount:  0,
			Status:      entities.DocStatusDraft,
		})
		return err
	})
	if err != nil {
		log.Printf("[document][usecase] convert quote failed quote_id=%s err=%v", quoteID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[document][usecase] quote converted quote_id=%s invoice_id=%s", quoteID, created.ID)
	return created, nil
}
