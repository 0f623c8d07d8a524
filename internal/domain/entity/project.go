package entity

import "time"

// ProjectStatus estado de un proyecto.
type ProjectStatus int

// Estados válidos de un proyecto.
const (
	ProjectProposal ProjectStatus = iota
	ProjectActive
	ProjectOnHold
	ProjectCompleted
	ProjectCancelled
)

var projectStatusNames = [...]string{"proposal", "active", "on_hold", "completed", "cancelled"}

// Valid indica si el estado es conocido.
func (s ProjectStatus) Valid() bool {
	return s >= ProjectProposal && s <= ProjectCancelled
}

// String devuelve el nombre del estado.
func (s ProjectStatus) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return projectStatusNames[s]
}

// ProjectStatuses lista todos los estados en orden.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectProposal, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled}
}

// Project proyecto de un cliente, con responsable (Owner).
type Project struct {
	ID          string
	Name        string // único
	Status      ProjectStatus
	Description string
	ClientID    string
	OwnerID     string
	StartDate   time.Time
	EndDate     *time.Time
	Notes       string
	CreatedBy   string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectComment comentario en un proyecto.
type ProjectComment struct {
	ID        string
	ProjectID string
	Text      string
	CreatedBy string
	CreatedAt time.Time
}
