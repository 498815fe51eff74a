package entities

import "time"

type ProjectType string

const (
	ProjectTypeKitchen  ProjectType = "KITCHEN"
	ProjectTypeWardrobe ProjectType = "WARDROBE"
	ProjectTypeOffice   ProjectType = "OFFICE"
	ProjectTypeOther    ProjectType = "OTHER"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeKitchen, ProjectTypeWardrobe, ProjectTypeOffice, ProjectTypeOther:
		return true
	}
	return false
}

// ProjectStatus is user-mutated; no transition is enforced.
type ProjectStatus string

const (
	ProjectStatusEstimate   ProjectStatus = "ESTIMATE"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusEstimate, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a job for a client.
//
// Budget is advisory only: quotes and invoices carry the real totals.
type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Name        string        `json:"name"`
	Type        ProjectType   `json:"type"`
	Status      ProjectStatus `json:"status"`
	StartDate   time.Time     `json:"startDate"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	Budget      float64       `json:"budget"`
	Description string        `json:"description"`
}
