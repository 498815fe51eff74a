package usecase

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/mock_settings_usecase.go -package=mocks

import (
	"context"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
)

type ISettingsUseCase interface {
	GetSettings(ctx context.Context) (entities.AppSettings, error)
	SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ILedgerRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ILedgerRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetSettings(ctx context.Context) (entities.AppSettings, error) {
	return u.repo.GetSettings(ctx)
}

func (u *SettingsUseCase) SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	if s.LogoURL == "" {
		s.LogoURL = entities.DefaultLogoURL
	}
	saved, err := u.repo.SaveSettings(ctx, s)
	if err != nil {
		log.Printf("[settings][usecase] save failed err=%v", err)
		return entities.AppSettings{}, err
	}
	return saved, nil
}
