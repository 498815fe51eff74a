package usecase

//go:generate mockgen -source=transaction_usecase.go -destination=../adapter/http/handlers/mocks/mock_transaction_usecase.go -package=mocks

import (
	"context"
	"errors"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrTransactionIDTaken   = errors.New("transaction id already exists")
)

// ITransactionUseCase manages the cash ledger. Amount sign is not checked here;
// callers send positive amounts and the direction comes from the type.
type ITransactionUseCase interface {
	ListTransactions(ctx context.Context) ([]entities.Transaction, error)
	GetTransaction(ctx context.Context, id string) (entities.Transaction, error)
	CreateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	UpdateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ILedgerRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, now: systemClock}
}

func (u *TransactionUseCase) ListTransactions(ctx context.Context) ([]entities.Transaction, error) {
	return u.repo.ListTransactions(ctx)
}

func (u *TransactionUseCase) GetTransaction(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	t, err := u.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) CreateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	if err := t.Validate(); err != nil {
		return entities.Transaction{}, err
	}
	if strings.TrimSpace(t.ID) == "" {
		t.ID = newID()
	}
	if t.Date.IsZero() {
		t.Date = u.now()
	}
	var created entities.Transaction
	err := u.repo.WithLock(func() error {
		existing, err := u.repo.GetTransactionByID(ctx, t.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrTransactionIDTaken
		}
		created, err = u.repo.CreateTransaction(ctx, t)
		return err
	})
	if err != nil {
		log.Printf("[transaction][usecase] create failed transaction_id=%s err=%v", t.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[transaction][usecase] created transaction_id=%s type=%s category=%s amount=%.2f", created.ID, created.Type, created.Category, created.Amount)
	return created, nil
}

func (u *TransactionUseCase) UpdateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if err := t.Validate(); err != nil {
		return entities.Transaction{}, err
	}
	updated, err := u.repo.UpdateTransaction(ctx, t)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return updated, nil
}
