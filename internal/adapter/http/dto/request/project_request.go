package request

import (
	"joinerypro/internal/domain/entities"
	"strings"
	"time"
)

type ProjectRequest struct {
	ClientID    string     `json:"clientId" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	Deadline    *time.Time `json:"deadline"`
	Budget      float64    `json:"budget" binding:"gte=0"`
	Description string     `json:"description"`
}

func (r ProjectRequest) ToEntity(id string) entities.Project {
	p := entities.Project{
		ID:          id,
		ClientID:    strings.TrimSpace(r.ClientID),
		Name:        strings.TrimSpace(r.Name),
		Type:        entities.ProjectType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Status:      entities.ProjectStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		Deadline:    r.Deadline,
		Budget:      r.Budget,
		Description: r.Description,
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	return p
}
