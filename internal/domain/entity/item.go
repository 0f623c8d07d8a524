package entity

import "time"

// Item representa un artículo del catálogo (producto o servicio) usado en proyectos.
type Item struct {
	ID          string
	Name        string // único
	Type        string
	Description string
	MPN         string // número de parte del fabricante
	Make        string // marca / fabricante
	Notes       string
	CreatedBy   string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
