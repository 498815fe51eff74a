package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
)

const (
	KeyClients      = "jp_clients"
	KeyMaterials    = "jp_materials"
	KeyProjects     = "jp_projects"
	KeyUsage        = "jp_usage"
	KeyQuotes       = "jp_quotes"
	KeyInvoices     = "jp_invoices"
	KeyTransactions = "jp_transactions"
	KeySettings     = "jp_settings"
)

// LedgerRepository keeps every entity collection in memory and writes the
// whole collection through to the key-value store on each mutation.
//
// mu guards the collections for the duration of a single call. writeMu is
// the coarser lock handed out by WithLock for use case sequences.
type LedgerRepository struct {
	kv      interfaces.IKeyValueStore
	mu      sync.RWMutex
	writeMu sync.Mutex

	clients      *collection[entities.Client]
	projects     *collection[entities.Project]
	materials    *collection[entities.Material]
	usage        *collection[entities.MaterialUsage]
	transactions *collection[entities.Transaction]
	quotes       *collection[entities.Quote]
	invoices     *collection[entities.Invoice]
	settings     entities.AppSettings
}

var _ interfaces.ILedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository loads every collection from kv.
func NewLedgerRepository(ctx context.Context, kv interfaces.IKeyValueStore) (*LedgerRepository, error) {
	r := &LedgerRepository{
		kv:           kv,
		clients:      newCollection(KeyClients, func(c entities.Client) string { return c.ID }, cloneClient),
		projects:     newCollection(KeyProjects, func(p entities.Project) string { return p.ID }, cloneProject),
		materials:    newCollection(KeyMaterials, func(m entities.Material) string { return m.ID }, nil),
		usage:        newCollection(KeyUsage, func(u entities.MaterialUsage) string { return u.ID }, nil),
		transactions: newCollection(KeyTransactions, func(t entities.Transaction) string { return t.ID }, nil),
		quotes:       newCollection(KeyQuotes, func(q entities.Quote) string { return q.ID }, cloneQuote),
		invoices:     newCollection(KeyInvoices, func(i entities.Invoice) string { return i.ID }, cloneInvoice),
	}

	loaders := []func(context.Context, interfaces.IKeyValueStore) error{
		r.clients.load, r.projects.load, r.materials.load, r.usage.load,
		r.transactions.load, r.quotes.load, r.invoices.load,
	}
	for _, load := range loaders {
		if err := load(ctx, kv); err != nil {
			return nil, err
		}
	}
	if err := r.loadSettings(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LedgerRepository) loadSettings(ctx context.Context) error {
	raw, err := r.kv.Load(ctx, KeySettings)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeySettings, err)
	}
	if len(raw) == 0 {
		r.settings = entities.DefaultSettings()
		return nil
	}
	var s entities.AppSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("decode %s: %w", KeySettings, err)
	}
	r.settings = s
	if r.settings.LogoURL == "" {
		r.settings.LogoURL = entities.DefaultLogoURL
		return r.flushSettings(ctx, r.settings)
	}
	return nil
}

func (r *LedgerRepository) flushSettings(ctx context.Context, s entities.AppSettings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeySettings, err)
	}
	if err := r.kv.Save(ctx, KeySettings, b); err != nil {
		return fmt.Errorf("save %s: %w", KeySettings, err)
	}
	return nil
}

func (r *LedgerRepository) WithLock(fn func() error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return fn()
}

// Clients

func (r *LedgerRepository) ListClients(_ context.Context) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients.list(), nil
}

func (r *LedgerRepository) GetClientByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, _ := r.clients.find(id)
	return c, nil
}

func (r *LedgerRepository) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.clients.add(ctx, r.kv, c); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *LedgerRepository) UpdateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.clients.replace(ctx, r.kv, c)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

// Projects

func (r *LedgerRepository) ListProjects(_ context.Context) ([]entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.projects.list(), nil
}

func (r *LedgerRepository) GetProjectByID(_ context.Context, id string) (entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, _ := r.projects.find(id)
	return p, nil
}

func (r *LedgerRepository) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.projects.add(ctx, r.kv, p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *LedgerRepository) UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.projects.replace(ctx, r.kv, p)
	if err != nil || !ok {
		return entities.Project{}, err
	}
	return p, nil
}

// Materials

func (r *LedgerRepository) ListMaterials(_ context.Context) ([]entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.materials.list(), nil
}

func (r *LedgerRepository) GetMaterialByID(_ context.Context, id string) (entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, _ := r.materials.find(id)
	return m, nil
}

func (r *LedgerRepository) CreateMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.materials.add(ctx, r.kv, m); err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *LedgerRepository) UpdateMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.materials.replace(ctx, r.kv, m)
	if err != nil || !ok {
		return entities.Material{}, err
	}
	return m, nil
}

// RemoveMaterial is a compensation step. Unknown ids are ignored.
func (r *LedgerRepository) RemoveMaterial(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.materials.remove(ctx, r.kv, id)
	return err
}

// Material usage is append-only.

func (r *LedgerRepository) ListMaterialUsage(_ context.Context) ([]entities.MaterialUsage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usage.list(), nil
}

func (r *LedgerRepository) CreateMaterialUsage(ctx context.Context, u entities.MaterialUsage) (entities.MaterialUsage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.usage.add(ctx, r.kv, u); err != nil {
		return entities.MaterialUsage{}, err
	}
	return u, nil
}

// Transactions

func (r *LedgerRepository) ListTransactions(_ context.Context) ([]entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transactions.list(), nil
}

func (r *LedgerRepository) GetTransactionByID(_ context.Context, id string) (entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, _ := r.transactions.find(id)
	return t, nil
}

func (r *LedgerRepository) CreateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.transactions.add(ctx, r.kv, t); err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *LedgerRepository) UpdateTransaction(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.transactions.replace(ctx, r.kv, t)
	if err != nil || !ok {
		return entities.Transaction{}, err
	}
	return t, nil
}

// Quotes

func (r *LedgerRepository) ListQuotes(_ context.Context) ([]entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quotes.list(), nil
}

func (r *LedgerRepository) GetQuoteByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, _ := r.quotes.find(id)
	return q, nil
}

func (r *LedgerRepository) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.quotes.add(ctx, r.kv, q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *LedgerRepository) UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.quotes.replace(ctx, r.kv, q)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return q, nil
}

// Invoices

func (r *LedgerRepository) ListInvoices(_ context.Context) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.invoices.list(), nil
}

func (r *LedgerRepository) GetInvoiceByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, _ := r.invoices.find(id)
	return i, nil
}

func (r *LedgerRepository) CreateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.invoices.add(ctx, r.kv, i); err != nil {
		return entities.Invoice{}, err
	}
	return i, nil
}

func (r *LedgerRepository) UpdateInvoice(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok, err := r.invoices.replace(ctx, r.kv, i)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return i, nil
}

// Settings

func (r *LedgerRepository) GetSettings(_ context.Context) (entities.AppSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSettings(r.settings), nil
}

func (r *LedgerRepository) SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.flushSettings(ctx, s); err != nil {
		return entities.AppSettings{}, err
	}
	r.settings = cloneSettings(s)
	return s, nil
}

// Snapshot copies every collection into a backup document. Timestamp is left
// to the caller.
func (r *LedgerRepository) Snapshot(_ context.Context) (entities.Backup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return entities.Backup{
		Version:       entities.BackupVersion,
		Clients:       r.clients.list(),
		Projects:      r.projects.list(),
		Materials:     r.materials.list(),
		MaterialUsage: r.usage.list(),
		Transactions:  r.transactions.list(),
		Quotes:        r.quotes.list(),
		Invoices:      r.invoices.list(),
		Settings:      cloneSettings(r.settings),
	}, nil
}

// Restore replaces every collection with the content of b and flushes each key.
// Memory is only swapped once every key was saved.
func (r *LedgerRepository) Restore(ctx context.Context, b entities.Backup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	flushes := []func() error{
		func() error { return r.clients.flush(ctx, r.kv, orEmpty(b.Clients)) },
		func() error { return r.projects.flush(ctx, r.kv, orEmpty(b.Projects)) },
		func() error { return r.materials.flush(ctx, r.kv, orEmpty(b.Materials)) },
		func() error { return r.usage.flush(ctx, r.kv, orEmpty(b.MaterialUsage)) },
		func() error { return r.transactions.flush(ctx, r.kv, orEmpty(b.Transactions)) },
		func() error { return r.quotes.flush(ctx, r.kv, orEmpty(b.Quotes)) },
		func() error { return r.invoices.flush(ctx, r.kv, orEmpty(b.Invoices)) },
		func() error { return r.flushSettings(ctx, b.Settings) },
	}
	for _, flush := range flushes {
		if err := flush(); err != nil {
			return err
		}
	}

	r.clients.reset(b.Clients)
	r.projects.reset(b.Projects)
	r.materials.reset(b.Materials)
	r.usage.reset(b.MaterialUsage)
	r.transactions.reset(b.Transactions)
	r.quotes.reset(b.Quotes)
	r.invoices.reset(b.Invoices)
	r.settings = cloneSettings(b.Settings)
	return nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
