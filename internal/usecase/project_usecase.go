package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/mock_project_usecase.go -package=mocks

import (
	"context"
	"errors"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectType   = errors.New("invalid project type")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrProjectIDTaken       = errors.New("project id already exists")
)

type IProjectUseCase interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.ILedgerRepository
	now  Clock
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.ILedgerRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, now: systemClock}
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.repo.ListProjects(ctx)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// CreateProject requires the client to exist at creation time. The link is
// not checked again afterwards.
func (u *ProjectUseCase) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ClientID = strings.TrimSpace(p.ClientID)
	if p.ClientID == "" {
		return entities.Project{}, ErrInvalidClientID
	}
	if p.Type == "" {
		p.Type = entities.ProjectTypeOther
	}
	if !p.Type.Valid() {
		return entities.Project{}, ErrInvalidProjectType
	}
	if p.Status == "" {
		p.Status = entities.ProjectStatusEstimate
	}
	if !p.Status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = newID()
	}
	if p.StartDate.IsZero() {
		p.StartDate = u.now()
	}

	var created entities.Project
	err := u.repo.WithLock(func() error {
		client, err := u.repo.GetClientByID(ctx, p.ClientID)
		if err != nil {
			return err
		}
		if client.ID == "" {
			return ErrClientNotFound
		}
		existing, err := u.repo.GetProjectByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrProjectIDTaken
		}
		created, err = u.repo.CreateProject(ctx, p)
		return err
	})
	if err != nil {
		log.Printf("[project][usecase] create failed client_id=%s err=%v", p.ClientID, err)
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s client_id=%s", created.ID, created.ClientID)
	return created, nil
}

func (u *ProjectUseCase) UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !p.Type.Valid() {
		return entities.Project{}, ErrInvalidProjectType
	}
	if !p.Status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	updated, err := u.repo.UpdateProject(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}
