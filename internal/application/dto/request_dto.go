package dto

import "time"

// CreateUserRequestRequest solicitud nueva de un usuario a los administradores.
type CreateUserRequestRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=255"`
	Body    string `json:"body" validate:"omitempty,max=5000"`
}

// ResolveUserRequestRequest resolución de un admin.
type ResolveUserRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// UserRequestFilter filtro por estado del listado de admin.
type UserRequestFilter struct {
	PageRequest
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// UserRequestResponse salida de solicitud.
type UserRequestResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Status     string     `json:"status"`
	ResolvedBy *string    `json:"resolved_by"`
	ResolvedAt *time.Time `json:"resolved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UserRequestListResponse lista paginada de solicitudes.
type UserRequestListResponse struct {
	Items []UserRequestResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
