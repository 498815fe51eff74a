package usecase

//go:generate mockgen -source=client_usecase.go -destination=../adapter/http/handlers/mocks/mock_client_usecase.go -package=mocks

import (
	"context"
	"errors"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
	ErrClientIDTaken     = errors.New("client id already exists")
)

type IClientUseCase interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	UpdateClient(ctx context.Context, c entities.Client) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.ILedgerRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.ILedgerRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.repo.ListClients(ctx)
}

func (u *ClientUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetClientByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if strings.TrimSpace(c.ID) == "" {
		c.ID = newID()
	}
	var created entities.Client
	err := u.repo.WithLock(func() error {
		existing, err := u.repo.GetClientByID(ctx, c.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrClientIDTaken
		}
		created, err = u.repo.CreateClient(ctx, c)
		return err
	})
	if err != nil {
		log.Printf("[client][usecase] create failed client_id=%s err=%v", c.ID, err)
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created client_id=%s", created.ID)
	return created, nil
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	updated, err := u.repo.UpdateClient(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}
