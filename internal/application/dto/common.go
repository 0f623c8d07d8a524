package dto

// PageRequest paginación y búsqueda para listados.
type PageRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
	Search string `query:"q" validate:"omitempty,max=200"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Fields detalla errores de validación por campo.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// OptionResponse par id/nombre para selects.
type OptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Principal usuario autenticado de la petición.
type Principal struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"-"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	Role      string `json:"role"`
}

// IsAdmin indica si el principal tiene rol admin.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
