package repository

// ListParams paginación y búsqueda por nombre para listados.
type ListParams struct {
	Limit  int
	Offset int
	Search string // filtro ILIKE por nombre; vacío = sin filtro
}

// Normalize aplica los límites por defecto (20, máximo 100).
func (p ListParams) Normalize() ListParams {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Viewer identifica a quién se le muestran documentos (filtro de privados).
type Viewer struct {
	UserID  string
	IsAdmin bool
}
