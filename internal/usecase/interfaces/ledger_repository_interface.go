package interfaces

//go:generate mockgen -source=ledger_repository_interface.go -destination=mocks/mock_ledger_repository_interface.go -package=mocks

import (
	"context"
	"joinerypro/internal/domain/entities"
)

// ILedgerRepository is the entity store.
//
// Every List returns a copy. GetByID returns the zero value when the id is
// unknown. Update returns the zero value when the id is unknown and leaves
// the collection untouched. Every Create/Update flushes the whole
// collection to the key-value store before returning.
//
// WithLock runs fn while holding the store-wide write lock. Use cases wrap
// their read-then-write sequences with it.
//
// RemoveMaterial exists only to undo a CreateMaterial whose follow-up
// write failed. It is not exposed as a ledger operation.
type ILedgerRepository interface {
	WithLock(fn func() error) error

	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClientByID(ctx context.Context, id string) (entities.Client, error)
	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	UpdateClient(ctx context.Context, c entities.Client) (entities.Client, error)

	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error)

	ListMaterials(ctx context.Context) ([]entities.Material, error)
	GetMaterialByID(ctx context.Context, id string) (entities.Material, error)
	CreateMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	UpdateMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	RemoveMaterial(ctx context.Context, id string) error

	ListMaterialUsage(ctx context.Context) ([]entities.MaterialUsage, error)
	CreateMaterialUsage(ctx context.Context, u entities.MaterialUsage) (entities.MaterialUsage, error)

	ListTransactions(ctx context.Context) ([]entities.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (entities.Transaction, error)
	CreateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	UpdateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error)

	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)

	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (entities.Invoice, error)
	CreateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	UpdateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error)

	GetSettings(ctx context.Context) (entities.AppSettings, error)
	SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)

	Snapshot(ctx context.Context) (entities.Backup, error)
	Restore(ctx context.Context, b entities.Backup) error
}
