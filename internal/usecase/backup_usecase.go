package usecase

//go:generate mockgen -source=backup_usecase.go -destination=../adapter/http/handlers/mocks/mock_backup_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
)

var (
	ErrUnsupportedBackupVersion = errors.New("unsupported backup version")
	ErrInvalidBackup            = errors.New("invalid backup document")
)

// IBackupUseCase exports and restores the whole ledger as one JSON document.
type IBackupUseCase interface {
	Export(ctx context.Context) (entities.Backup, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, b entities.Backup) error
	ImportJSON(ctx context.Context, raw []byte) error
}

type BackupUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(repo interfaces.ILedgerRepository) *BackupUseCase {
	return &BackupUseCase{repo: repo, now: systemClock}
}

func (u *BackupUseCase) Export(ctx context.Context) (entities.Backup, error) {
	b, err := u.repo.Snapshot(ctx)
	if err != nil {
		return entities.Backup{}, err
	}
	b.Timestamp = u.now().UTC()
	b.Version = entities.BackupVersion
	return b, nil
}

func (u *BackupUseCase) ExportJSON(ctx context.Context) ([]byte, error) {
	b, err := u.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(b, "", "  ")
}

// Import replaces the ledger content with b.
func (u *BackupUseCase) Import(ctx context.Context, b entities.Backup) error {
	if b.Version != entities.BackupVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedBackupVersion, b.Version)
	}
	if b.Settings.LogoURL == "" {
		b.Settings.LogoURL = entities.DefaultLogoURL
	}
	err := u.repo.WithLock(func() error {
		return u.repo.Restore(ctx, b)
	})
	if err != nil {
		log.Printf("[backup][usecase] restore failed err=%v", err)
		return err
	}
	log.Printf("[backup][usecase] restored clients=%d projects=%d materials=%d usage=%d transactions=%d quotes=%d invoices=%d",
		len(b.Clients), len(b.Projects), len(b.Materials), len(b.MaterialUsage), len(b.Transactions), len(b.Quotes), len(b.Invoices))
	return nil
}

func (u *BackupUseCase) ImportJSON(ctx context.Context, raw []byte) error {
	var b entities.Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return u.Import(ctx, b)
}
