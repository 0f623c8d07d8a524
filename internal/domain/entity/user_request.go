package entity

import "time"

// Estados de una solicitud de usuario.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// UserRequest solicitud que un usuario dirige a los administradores
// (p. ej. pedir el borrado de un registro o un cambio de permisos).
type UserRequest struct {
	ID         string
	UserID     string
	Subject    string
	Body       string
	Status     string
	ResolvedBy *string
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

// Pending indica si la solicitud aún no fue resuelta.
func (r *UserRequest) Pending() bool {
	return r.Status == RequestPending
}
